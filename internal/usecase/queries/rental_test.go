//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"boxrent/internal/domain/user"
	"boxrent/internal/infra"
	"boxrent/internal/pkg/clock"
	"boxrent/internal/pkg/errs"
	"boxrent/internal/usecase/queries"
	"boxrent/tests/common/builder"
	queriesmock "boxrent/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockRentalViewRepo(ctrl)
	q := queries.NewRentalQueries(repo, clock.NewMockClock(time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)))

	view := builder.NewRentalBuilder().BuildReadModel()
	admin := user.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	owner := user.Actor{ID: view.TenantID, Role: user.RoleProfessional}
	stranger := user.Actor{ID: uuid.New(), Role: user.RoleProfessional}

	t.Run("admin reads any rental", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(context.Background(), admin, view.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(view, got); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("owner reads their own rental", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := q.GetByID(context.Background(), owner, view.ID)
		require.NoError(t, err)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := q.GetByID(context.Background(), stranger, view.ID)
		assert.ErrorIs(t, err, queries.ErrForbidden)
	})

	t.Run("missing rental maps to not found", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).
			Return(nil, infra.WrapRepoErr("rental not found", errs.New("no rows"), infra.KindNotFound))

		_, err := q.GetByID(context.Background(), admin, view.ID)
		assert.ErrorIs(t, err, queries.ErrRentalNotFound)
	})
}

func TestListExpiringWithin(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockRentalViewRepo(ctrl)
	q := queries.NewRentalQueries(repo, clock.NewMockClock(now))

	items := []*queries.RentalListItem{builder.NewRentalBuilder().BuildListItem()}

	t.Run("cutoff is now plus the window", func(t *testing.T) {
		repo.EXPECT().FindActiveEndingBefore(gomock.Any(), now.AddDate(0, 0, 30)).
			Return(items, nil)

		got, err := q.ListExpiringWithin(context.Background(), 30)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("negative window collapses to today", func(t *testing.T) {
		repo.EXPECT().FindActiveEndingBefore(gomock.Any(), now).
			Return(nil, nil)

		got, err := q.ListExpiringWithin(context.Background(), -5)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
