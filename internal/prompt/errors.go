package prompt

import (
	"errors"
	"fmt"
)

// ErrAborted is returned when the user declines a confirmation prompt.
var ErrAborted = errors.New("aborted")

// ErrNoAction is returned by Undo when there is nothing to undo.
var ErrNoAction = errors.New("no action to undo")

// NotFoundError reports a missing source or target file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return "not found: " + e.Path
}

// UnsupportedActionError reports an action that is recorded but has no
// reversal path (currently rename).
type UnsupportedActionError struct {
	Kind ActionKind
}

func (e *UnsupportedActionError) Error() string {
	return fmt.Sprintf("undo of %q is not supported", string(e.Kind))
}

// UnknownActionError reports a corrupted or unrecognized action record.
type UnknownActionError struct {
	Kind ActionKind
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown last action %q", string(e.Kind))
}
