package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Undo reverses the given action and returns a human-readable message.
// A nil action means there is nothing to undo. Undo itself never clears
// the persisted slot; the caller does that after a successful return,
// so a second undo invocation fails with ErrNoAction.
func Undo(a *Action) (string, error) {
	if a == nil {
		return "", ErrNoAction
	}

	switch a.Kind {
	case ActionRemove:
		return undoRemove(a)
	case ActionAdd:
		return undoAdd(a)
	case ActionRename:
		// Rename actions are recorded but have no reversal path.
		return "", &UnsupportedActionError{Kind: a.Kind}
	default:
		return "", &UnknownActionError{Kind: a.Kind}
	}
}

// undoRemove moves the trashed file back to where it was removed from.
func undoRemove(a *Action) (string, error) {
	if _, err := os.Stat(a.Trashed); err != nil {
		return "", &NotFoundError{Path: a.Trashed}
	}
	if err := os.MkdirAll(filepath.Dir(a.Dest), 0755); err != nil {
		return "", fmt.Errorf("restoring %s: %w", filepath.Base(a.Dest), err)
	}
	if err := moveFile(a.Trashed, a.Dest); err != nil {
		return "", fmt.Errorf("restoring %s: %w", filepath.Base(a.Dest), err)
	}
	return fmt.Sprintf("restored %s", filepath.Base(a.Dest)), nil
}

// undoAdd reverses an add. In priority order: restore an overwritten
// original from trash (preserving the added file in trash under an
// .added suffix), move the added file back to its original source path,
// or fall back to dropping it in the current working directory.
func undoAdd(a *Action) (string, error) {
	if _, err := os.Stat(a.Dest); err != nil {
		return "", &NotFoundError{Path: a.Dest}
	}

	if a.OverwrittenTrash != "" {
		if _, err := os.Stat(a.OverwrittenTrash); err == nil {
			return undoAddOverwrite(a)
		}
	}

	if a.Src != "" {
		if err := os.MkdirAll(filepath.Dir(a.Src), 0755); err == nil {
			if err := moveFile(a.Dest, a.Src); err == nil {
				return fmt.Sprintf("moved %s back to %s", filepath.Base(a.Dest), a.Src), nil
			}
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to undo add: %w", err)
	}
	fallback := filepath.Join(cwd, filepath.Base(a.Dest))
	if err := moveFile(a.Dest, fallback); err != nil {
		return "", fmt.Errorf("failed to undo add: %w", err)
	}
	return fmt.Sprintf("moved %s to %s", filepath.Base(a.Dest), fallback), nil
}

// undoAddOverwrite swaps the added file for the original it overwrote:
// the added file is kept in trash under an .added suffix and the
// original comes back to dest.
func undoAddOverwrite(a *Action) (string, error) {
	td, err := trashDir(filepath.Dir(a.Dest))
	if err != nil {
		return "", err
	}
	tname := fmt.Sprintf("%d_%s.added", time.Now().Unix(), filepath.Base(a.Dest))
	if err := moveFile(a.Dest, filepath.Join(td, tname)); err != nil {
		return "", fmt.Errorf("failed to undo add: %w", err)
	}
	if err := moveFile(a.OverwrittenTrash, a.Dest); err != nil {
		return "", fmt.Errorf("failed to undo add: %w", err)
	}
	return "restored overwritten prompt and moved new added file to trash", nil
}
