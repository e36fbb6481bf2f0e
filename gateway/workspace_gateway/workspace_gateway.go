// Package workspace_gateway adapts the workspace store driver to the
// workspace port, keeping the persistence shape out of the usecase layer.
package workspace_gateway

import (
	"context"

	"fieldboard/domain"
	"fieldboard/driver/workspace_db"
	"fieldboard/port/workspace_port"
)

type WorkspaceGateway struct {
	repository *workspace_db.WorkspaceRepository
}

var _ workspace_port.WorkspacePort = (*WorkspaceGateway)(nil)

func NewWorkspaceGateway(pool workspace_db.PgxIface) *WorkspaceGateway {
	return &WorkspaceGateway{repository: workspace_db.NewWorkspaceRepository(pool)}
}

func (g *WorkspaceGateway) FetchWorkspace(ctx context.Context, userID string) (*domain.Workspace, error) {
	return g.repository.GetWorkspace(ctx, userID)
}

func (g *WorkspaceGateway) SaveWorkspace(ctx context.Context, userID string, workspace *domain.Workspace) (*domain.Workspace, error) {
	return g.repository.SaveWorkspace(ctx, userID, workspace)
}
