package prompt

// ActionKind identifies the kind of mutation an Action records.
type ActionKind string

const (
	ActionAdd    ActionKind = "add"
	ActionRemove ActionKind = "remove"
	ActionRename ActionKind = "rename"
)

// Action is the record of the most recent mutating operation, holding
// enough information to reverse it. Mutation operations return one and
// the caller persists it; a successful undo clears the persisted slot.
// Only the fields relevant to Kind are set.
type Action struct {
	Kind ActionKind `json:"action"`

	// add
	Src  string `json:"src,omitempty"`
	Dest string `json:"dest,omitempty"`

	// rename
	Old string `json:"old,omitempty"`
	New string `json:"new,omitempty"`

	// remove: where the file went; add/rename: where an overwritten
	// target went, if any.
	Trashed          string `json:"trashed,omitempty"`
	OverwrittenTrash string `json:"overwritten_trash,omitempty"`
}
