package readstore

import (
	"context"

	"boxrent/internal/infra"
	"boxrent/internal/infra/db"
	"boxrent/internal/pkg/pgconv"
	"boxrent/internal/usecase/queries"

	"github.com/google/uuid"
)

const selectResourceViewSQL = `
SELECT id, name, site_id
FROM resources
WHERE id = $1`

const selectAllResourcesSQL = `
SELECT id, name, site_id
FROM resources
ORDER BY name`

type ResourceReadStore struct {
	db db.DBTX
}

func NewResourceReadStore(db db.DBTX) *ResourceReadStore {
	return &ResourceReadStore{db: db}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	var view queries.ResourceView
	err := r.db.QueryRow(ctx, selectResourceViewSQL, id).Scan(&view.ID, &view.Name, &view.SiteID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource", err)
	}
	return &view, nil
}

func (r *ResourceReadStore) FindAll(ctx context.Context) ([]*queries.ResourceView, error) {
	rows, err := r.db.Query(ctx, selectAllResourcesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}
	defer rows.Close()

	var views []*queries.ResourceView
	for rows.Next() {
		var view queries.ResourceView
		if err := rows.Scan(&view.ID, &view.Name, &view.SiteID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan resource row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate resource rows", err)
	}
	return views, nil
}
