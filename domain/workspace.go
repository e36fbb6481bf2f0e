package domain

import "time"

// Structural limits enforced when a workspace snapshot is saved.
const (
	WorkspaceMaxFields         = 200
	WorkspaceMaxImagesPerField = 1000
	WorkspaceMaxNameLength     = 120
	WorkspaceMaxNoteLength     = 2000
	WorkspaceMaxURLLength      = 2048
)

// Workspace is a user's full board snapshot: ordered fields, each holding
// ordered images. The client always replaces the whole snapshot on save.
type Workspace struct {
	Fields    []Field   `json:"fields"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Field is a named collection of images on the board.
type Field struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Images []FieldImage `json:"images"`
}

// FieldImage is one image pinned to a field, with its user note and position
// within the field.
type FieldImage struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Note     string `json:"note"`
	Position int    `json:"position"`
}

// EmptyWorkspace is the snapshot served to accounts that have never saved.
func EmptyWorkspace() *Workspace {
	return &Workspace{Fields: []Field{}}
}
