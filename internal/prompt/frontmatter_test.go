package prompt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrontmatter(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.prompt.md")
	writeFile(t, p, `---
description: "Review a pull request"
mode: agent
priority: 3
---

Body text here.
`)

	fields := Frontmatter(p)
	require.Equal(t, "Review a pull request", fields["description"])
	require.Equal(t, "agent", fields["mode"])
	require.Equal(t, "3", fields["priority"])
}

func TestFrontmatterAbsent(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.prompt.md")
	writeFile(t, p, "Just body text, no frontmatter.\n")

	require.Empty(t, Frontmatter(p))
}

func TestFrontmatterUnterminated(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.prompt.md")
	writeFile(t, p, "---\ndescription: never closed\n")

	require.Empty(t, Frontmatter(p))
}

func TestFrontmatterClosingFenceExactLine(t *testing.T) {
	// A line merely starting with "---" does not close the block.
	p := filepath.Join(t.TempDir(), "a.prompt.md")
	writeFile(t, p, "---\ndescription: hi\n--- trailing\n")
	require.Empty(t, Frontmatter(p))

	// Whitespace around the fence is tolerated, as in a trailing space.
	q := filepath.Join(t.TempDir(), "b.prompt.md")
	writeFile(t, q, "---\ndescription: hi\n--- \nBody.\n")
	require.Equal(t, "hi", Frontmatter(q)["description"])
}

func TestFrontmatterMissingFile(t *testing.T) {
	require.Empty(t, Frontmatter(filepath.Join(t.TempDir(), "nope.prompt.md")))
}

func TestFrontmatterInvalidYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.prompt.md")
	writeFile(t, p, "---\n\t: [broken\n---\n")

	require.Empty(t, Frontmatter(p))
}
