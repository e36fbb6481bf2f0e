package workspace_db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"fieldboard/domain"
	"fieldboard/utils/logger"
)

// GetWorkspace loads a user's snapshot. Returns nil without error when the
// user has never saved one.
func (r *WorkspaceRepository) GetWorkspace(ctx context.Context, userID string) (*domain.Workspace, error) {
	var (
		snapshot  []byte
		version   int64
		updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx,
		`SELECT snapshot, version, updated_at FROM workspaces WHERE user_id = $1`,
		userID,
	).Scan(&snapshot, &version, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.SafeErrorContext(ctx, "error fetching workspace", "error", err, "user_id", userID)
		return nil, fmt.Errorf("get workspace: %w", err)
	}

	var fields []domain.Field
	if err := json.Unmarshal(snapshot, &fields); err != nil {
		logger.SafeErrorContext(ctx, "error decoding workspace snapshot", "error", err, "user_id", userID)
		return nil, fmt.Errorf("decode workspace snapshot: %w", err)
	}

	return &domain.Workspace{
		Fields:    fields,
		Version:   version,
		UpdatedAt: updatedAt,
	}, nil
}

// SaveWorkspace upserts a user's snapshot, bumping the version on every save.
func (r *WorkspaceRepository) SaveWorkspace(ctx context.Context, userID string, workspace *domain.Workspace) (*domain.Workspace, error) {
	snapshot, err := json.Marshal(workspace.Fields)
	if err != nil {
		return nil, fmt.Errorf("encode workspace snapshot: %w", err)
	}

	var (
		version   int64
		updatedAt time.Time
	)
	err = r.pool.QueryRow(ctx,
		`INSERT INTO workspaces (user_id, snapshot, version, updated_at)
		 VALUES ($1, $2, 1, now())
		 ON CONFLICT (user_id) DO UPDATE SET
		   snapshot = EXCLUDED.snapshot,
		   version = workspaces.version + 1,
		   updated_at = now()
		 RETURNING version, updated_at`,
		userID, snapshot,
	).Scan(&version, &updatedAt)
	if err != nil {
		logger.SafeErrorContext(ctx, "error saving workspace", "error", err, "user_id", userID)
		return nil, fmt.Errorf("save workspace: %w", err)
	}

	return &domain.Workspace{
		Fields:    workspace.Fields,
		Version:   version,
		UpdatedAt: updatedAt,
	}, nil
}
