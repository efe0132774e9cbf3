package browse

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "exact", truncate("exact", 5))
	require.Equal(t, "long…", truncate("longer than five", 5))
}

func TestTruncateMultiByte(t *testing.T) {
	// Truncation counts runes, so multi-byte characters are never split.
	s := "héllo wörld — prompt déscription"
	out := truncate(s, 10)
	require.True(t, utf8.ValidString(out), "truncated to invalid UTF-8: %q", out)
	require.Equal(t, 10, utf8.RuneCountInString(out))
	require.Equal(t, "héllo wör…", out)
}
