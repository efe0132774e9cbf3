package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUndoNil(t *testing.T) {
	_, err := Undo(nil)
	require.ErrorIs(t, err, ErrNoAction)
}

func TestUndoRemoveRestores(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root, nil)
	p := filepath.Join(root, "notes.prompt.md")
	writeFile(t, p, "the content")

	action, err := store.Remove("notes", true)
	require.NoError(t, err)
	require.NoFileExists(t, p)

	msg, err := Undo(action)
	require.NoError(t, err)
	require.Contains(t, msg, "restored")

	// Byte-identical at the original path, trash entry consumed.
	require.Equal(t, "the content", readFile(t, p))
	require.NoFileExists(t, action.Trashed)
}

func TestUndoRemoveTrashGone(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root, nil)
	writeFile(t, filepath.Join(root, "notes.prompt.md"), "x")

	action, err := store.Remove("notes", true)
	require.NoError(t, err)
	require.NoError(t, os.Remove(action.Trashed))

	_, err = Undo(action)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestUndoAddMovesBackToSource(t *testing.T) {
	root := t.TempDir()
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "notes")
	writeFile(t, src, "hello")

	store := NewStore(root, nil)
	_, action, err := store.Add(src, false)
	require.NoError(t, err)

	msg, err := Undo(action)
	require.NoError(t, err)
	require.Contains(t, msg, "back to")

	require.Equal(t, "hello", readFile(t, src))
	require.NoFileExists(t, action.Dest)
}

func TestUndoAddRestoresOverwritten(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "notes.prompt.md")
	writeFile(t, dest, "old")
	src := filepath.Join(t.TempDir(), "notes.prompt.md")
	writeFile(t, src, "new")

	store := NewStore(root, nil)
	_, action, err := store.Add(src, true)
	require.NoError(t, err)
	require.Equal(t, "new", readFile(t, dest))

	_, err = Undo(action)
	require.NoError(t, err)

	// The overwritten original is back and the added copy is preserved
	// in trash under an .added suffix.
	require.Equal(t, "old", readFile(t, dest))

	matches, err := filepath.Glob(filepath.Join(root, ".trash", "*_notes.prompt.md.added"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "new", readFile(t, matches[0]))
}

func TestUndoAddFallbackToCwd(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(t.TempDir(), "notes")
	writeFile(t, src, "hello")

	store := NewStore(root, nil)
	_, action, err := store.Add(src, false)
	require.NoError(t, err)

	// Make the original source path unavailable.
	action.Src = ""

	cwd := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(cwd))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	msg, err := Undo(action)
	require.NoError(t, err)
	require.True(t, strings.Contains(msg, "moved"), "msg %q", msg)

	require.Equal(t, "hello", readFile(t, filepath.Join(cwd, "notes.prompt.md")))
}

func TestUndoAddDestGone(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(t.TempDir(), "notes")
	writeFile(t, src, "hello")

	store := NewStore(root, nil)
	_, action, err := store.Add(src, false)
	require.NoError(t, err)
	require.NoError(t, os.Remove(action.Dest))

	_, err = Undo(action)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestUndoRenameUnsupported(t *testing.T) {
	_, err := Undo(&Action{Kind: ActionRename, Old: "a", New: "b"})
	var unsupported *UnsupportedActionError
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, ActionRename, unsupported.Kind)
}

func TestUndoUnknownAction(t *testing.T) {
	_, err := Undo(&Action{Kind: "frobnicate"})
	var unknown *UnknownActionError
	require.ErrorAs(t, err, &unknown)
}

func TestUndoIsSingleShot(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root, nil)
	writeFile(t, filepath.Join(root, "notes.prompt.md"), "x")

	// The caller's flow: undo, then clear the slot.
	last, err := store.Remove("notes", true)
	require.NoError(t, err)

	_, err = Undo(last)
	require.NoError(t, err)
	last = nil

	_, err = Undo(last)
	require.ErrorIs(t, err, ErrNoAction)
}
