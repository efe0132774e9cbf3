package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"

	"github.com/andrader/pmpts/internal/prompt"
)

// setHome points the settings file at a temp home for the test.
func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.Reset()
	t.Cleanup(homedir.Reset)
	return home
}

func TestLoadMissing(t *testing.T) {
	setHome(t)

	cfg := Load()
	require.Empty(t, cfg.Root)
	require.Nil(t, cfg.LastAction)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	setHome(t)

	cfg := &Config{
		Root: "/tmp/prompts",
		LastAction: &prompt.Action{
			Kind:    prompt.ActionRemove,
			Dest:    "/tmp/prompts/a.prompt.md",
			Trashed: "/tmp/prompts/.trash/123_a.prompt.md",
		},
	}
	require.NoError(t, cfg.Save())

	loaded := Load()
	require.Equal(t, "/tmp/prompts", loaded.Root)
	require.NotNil(t, loaded.LastAction)
	require.Equal(t, prompt.ActionRemove, loaded.LastAction.Kind)
	require.Equal(t, "/tmp/prompts/.trash/123_a.prompt.md", loaded.LastAction.Trashed)
}

func TestLoadCorrupt(t *testing.T) {
	home := setHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".pmpts.json"), []byte("{not json"), 0644))

	cfg := Load()
	require.Empty(t, cfg.Root)
	require.Nil(t, cfg.LastAction)
}

func TestRootDir(t *testing.T) {
	setHome(t)

	cfg := &Config{Root: "/custom/prompts"}
	require.Equal(t, "/custom/prompts", cfg.RootDir())

	cfg.Root = ""
	require.Equal(t, DefaultRoot(), cfg.RootDir())
	require.True(t, strings.HasSuffix(cfg.RootDir(), filepath.Join("Code", "User", "prompts")),
		"default root %q", cfg.RootDir())
}

func TestClearLastAction(t *testing.T) {
	setHome(t)

	cfg := &Config{LastAction: &prompt.Action{Kind: prompt.ActionAdd, Dest: "/x"}}
	require.NoError(t, cfg.Save())

	cfg = Load()
	cfg.LastAction = nil
	require.NoError(t, cfg.Save())

	require.Nil(t, Load().LastAction)
}
