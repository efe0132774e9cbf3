package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Suffix is the required filename ending identifying a prompt file.
const Suffix = ".prompt.md"

// trashDirName is the per-root directory holding soft-deleted files.
const trashDirName = ".trash"

// ConfirmFunc asks the user a yes/no question and reports the answer.
// The CLI supplies a stdin prompt; the TUI and tests supply their own.
type ConfirmFunc func(question string) bool

// Store performs mutations on a prompt root directory. Removed or
// overwritten files always go to the root's trash directory rather than
// being deleted, and every mutation returns an Action that can reverse it.
type Store struct {
	root    string
	confirm ConfirmFunc
	move    func(src, dst string) error // swapped out in tests to force move failures
}

// NewStore creates a Store for the given root. confirm may be nil, in
// which case every confirmation is declined.
func NewStore(root string, confirm ConfirmFunc) *Store {
	if confirm == nil {
		confirm = func(string) bool { return false }
	}
	return &Store{root: root, confirm: confirm, move: moveFile}
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// EnsureRoot creates the root directory if it does not exist.
func (s *Store) EnsureRoot() error {
	return os.MkdirAll(s.root, 0755)
}

// NormalizeName appends the prompt suffix to name unless already present.
func NormalizeName(name string) string {
	if strings.HasSuffix(name, Suffix) {
		return name
	}
	return name + Suffix
}

// DisplayName strips the prompt suffix from a filename.
func DisplayName(file string) string {
	return strings.TrimSuffix(file, Suffix)
}

// trashDir returns the trash directory path, creating it if needed.
func trashDir(root string) (string, error) {
	d := filepath.Join(root, trashDirName)
	if err := os.MkdirAll(d, 0755); err != nil {
		return "", fmt.Errorf("creating trash dir: %w", err)
	}
	return d, nil
}

// Trash moves path into the root's trash directory under a
// timestamp-prefixed name and returns the new path. On failure the
// original file stays where it was. Two trashings of the same basename
// within the same second collide; the last one wins.
func (s *Store) Trash(path string) (string, error) {
	td, err := trashDir(s.root)
	if err != nil {
		return "", err
	}
	trashed := filepath.Join(td, fmt.Sprintf("%d_%s", time.Now().Unix(), filepath.Base(path)))
	if err := s.move(path, trashed); err != nil {
		return "", fmt.Errorf("moving to trash: %w", err)
	}
	return trashed, nil
}

// trashExisting moves an existing destination out of the way, asking for
// confirmation first unless force is set. Returns the trashed path, or
// "" when dest does not exist. A stat failure other than not-exist is an
// error: an unreadable destination must not be silently overwritten.
func (s *Store) trashExisting(dest string, force bool) (string, error) {
	if _, err := os.Stat(dest); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("checking %s: %w", dest, err)
	}
	if !force && !s.confirm(fmt.Sprintf("%s already exists. Overwrite?", dest)) {
		return "", ErrAborted
	}
	return s.Trash(dest)
}

// Add moves the file at src into the root, appending the prompt suffix
// to its basename if missing. An existing destination is trashed first
// (after confirmation unless force). Returns the destination filename
// and the action to undo the add.
//
// If the final move fails after an existing destination was trashed, the
// trashed file is restored best-effort so the root never ends up with
// neither the old nor the new content.
func (s *Store) Add(src string, force bool) (string, *Action, error) {
	if _, err := os.Stat(src); err != nil {
		return "", nil, &NotFoundError{Path: src}
	}

	base := NormalizeName(filepath.Base(src))
	dest := filepath.Join(s.root, base)

	overwrittenTrash, err := s.trashExisting(dest, force)
	if err != nil {
		return "", nil, err
	}

	if err := s.move(src, dest); err != nil {
		if overwrittenTrash != "" {
			// Best-effort rollback; the move error is what gets reported.
			_ = s.move(overwrittenTrash, dest)
		}
		return "", nil, fmt.Errorf("moving %s: %w", src, err)
	}

	return base, &Action{
		Kind:             ActionAdd,
		Src:              src,
		Dest:             dest,
		OverwrittenTrash: overwrittenTrash,
	}, nil
}

// Remove moves the named prompt to the trash. The name may be given with
// or without the suffix. yes skips the confirmation prompt.
func (s *Store) Remove(name string, yes bool) (*Action, error) {
	candidate := NormalizeName(name)
	p := filepath.Join(s.root, candidate)
	if _, err := os.Stat(p); err != nil {
		return nil, &NotFoundError{Path: candidate}
	}

	if !yes && !s.confirm(fmt.Sprintf("Remove %s?", p)) {
		return nil, ErrAborted
	}

	trashed, err := s.Trash(p)
	if err != nil {
		return nil, err
	}

	return &Action{Kind: ActionRemove, Dest: p, Trashed: trashed}, nil
}

// Rename moves a prompt to a new name, both suffix-normalized. An
// existing target is trashed first (after confirmation unless force),
// with the same rollback guarantee as Add.
func (s *Store) Rename(oldName, newName string, force bool) (*Action, error) {
	oldCandidate := NormalizeName(oldName)
	newCandidate := NormalizeName(newName)
	pOld := filepath.Join(s.root, oldCandidate)
	pNew := filepath.Join(s.root, newCandidate)

	if _, err := os.Stat(pOld); err != nil {
		return nil, &NotFoundError{Path: oldCandidate}
	}

	overwrittenTrash, err := s.trashExisting(pNew, force)
	if err != nil {
		return nil, err
	}

	if err := s.move(pOld, pNew); err != nil {
		if overwrittenTrash != "" {
			_ = s.move(overwrittenTrash, pNew)
		}
		return nil, fmt.Errorf("renaming %s: %w", oldCandidate, err)
	}

	return &Action{
		Kind:             ActionRename,
		Old:              pOld,
		New:              pNew,
		OverwrittenTrash: overwrittenTrash,
	}, nil
}

// Copy copies a prompt to an output path outside the root. No action is
// recorded; copying is not a mutation of the root.
func (s *Store) Copy(name, out string) error {
	candidate := NormalizeName(name)
	p := filepath.Join(s.root, candidate)
	if _, err := os.Stat(p); err != nil {
		return &NotFoundError{Path: candidate}
	}
	if err := copyFile(p, out); err != nil {
		return fmt.Errorf("copying %s: %w", candidate, err)
	}
	return nil
}

// Entry is a prompt file in the root.
type Entry struct {
	Name string // name without the suffix
	File string // filename with the suffix
	Path string // absolute path
}

// Entries returns the prompt files directly under the root, sorted by
// filename. A missing root yields an empty list.
func (s *Store) Entries() ([]Entry, error) {
	dirents, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading root: %w", err)
	}

	var entries []Entry
	for _, d := range dirents {
		if d.IsDir() || !strings.HasSuffix(d.Name(), Suffix) {
			continue
		}
		entries = append(entries, Entry{
			Name: DisplayName(d.Name()),
			File: d.Name(),
			Path: filepath.Join(s.root, d.Name()),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].File < entries[j].File
	})

	return entries, nil
}
