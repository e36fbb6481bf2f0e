package workspace_port

import (
	"context"

	"fieldboard/domain"
)

// WorkspacePort defines the interface to the per-account workspace store.
type WorkspacePort interface {
	// FetchWorkspace returns the stored snapshot for a user, or nil when the
	// user has never saved one.
	FetchWorkspace(ctx context.Context, userID string) (*domain.Workspace, error)

	// SaveWorkspace replaces the user's snapshot and returns the stored form
	// with its new version and timestamp.
	SaveWorkspace(ctx context.Context, userID string, workspace *domain.Workspace) (*domain.Workspace, error)
}
