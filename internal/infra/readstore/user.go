package readstore

import (
	"context"

	"boxrent/internal/infra"
	"boxrent/internal/infra/db"
	"boxrent/internal/pkg/pgconv"
	"boxrent/internal/usecase/queries"

	"github.com/google/uuid"
)

const selectUserByEmailSQL = `
SELECT id, email, password_hash, role, is_active
FROM users
WHERE email = $1`

const selectUserByIDSQL = `
SELECT id, email, password_hash, role, is_active
FROM users
WHERE id = $1`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, error) {
	return r.findOne(ctx, selectUserByEmailSQL, email)
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	return r.findOne(ctx, selectUserByIDSQL, id)
}

func (r *UserReadStore) findOne(ctx context.Context, query string, arg any) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&view.ID, &view.Email, &view.PasswordHash, &view.Role, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}
