package workspace_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxIface is the subset of pgxpool.Pool this driver uses. pgxmock's pool
// satisfies it too, which is what the driver tests run against.
type PgxIface interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

var _ PgxIface = (*pgxpool.Pool)(nil)

// WorkspaceRepository persists board snapshots, one row per account.
type WorkspaceRepository struct {
	pool PgxIface
}

func NewWorkspaceRepository(pool PgxIface) *WorkspaceRepository {
	return &WorkspaceRepository{pool: pool}
}
