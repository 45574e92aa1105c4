package readstore

import (
	"context"

	"boxrent/internal/infra"
	"boxrent/internal/infra/db"
	"boxrent/internal/usecase/shared"

	"github.com/google/uuid"
)

const resourceExistsSQL = `SELECT EXISTS(SELECT 1 FROM resources WHERE id = $1)`

const tenantExistsSQL = `
SELECT EXISTS(SELECT 1 FROM users WHERE id = $1 AND is_active)`

// CommandReads answers the collaborator existence checks commands run
// before opening a transaction.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(db db.DBTX) shared.CommandReads {
	return &CommandReads{db: db}
}

func (r *CommandReads) ResourceExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, resourceExistsSQL, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check resource existence", err)
	}
	return exists, nil
}

func (r *CommandReads) TenantExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, tenantExistsSQL, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check tenant existence", err)
	}
	return exists, nil
}
