package queries

import (
	"context"

	"boxrent/internal/infra"
	"boxrent/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrResourceNotFound = errs.New("resource not found")

type ResourceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	ListAll(ctx context.Context) ([]*ResourceView, error)
}

type ResourceViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	FindAll(ctx context.Context) ([]*ResourceView, error)
}

type resourceQueriesImpl struct {
	repo ResourceViewRepo
}

func NewResourceQueries(repo ResourceViewRepo) ResourceQueries {
	return &resourceQueriesImpl{repo: repo}
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *resourceQueriesImpl) ListAll(ctx context.Context) ([]*ResourceView, error) {
	return q.repo.FindAll(ctx)
}
