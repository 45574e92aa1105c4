//go:build unit

package user_test

import (
	"testing"

	"boxrent/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	ownID := uuid.New()
	otherID := uuid.New()

	admin := user.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	professional := user.Actor{ID: ownID, Role: user.RoleProfessional}

	allActions := []user.Action{
		user.ActionCreateRental,
		user.ActionUpdateRental,
		user.ActionCancelRental,
		user.ActionRenewRental,
		user.ActionRemoveRental,
		user.ActionReadRental,
	}

	t.Run("admin can do everything", func(t *testing.T) {
		for _, action := range allActions {
			assert.True(t, user.Authorize(admin, action, otherID), action)
		}
	})

	t.Run("professional owns the rental", func(t *testing.T) {
		assert.True(t, user.Authorize(professional, user.ActionCreateRental, uuid.Nil))
		assert.True(t, user.Authorize(professional, user.ActionUpdateRental, ownID))
		assert.True(t, user.Authorize(professional, user.ActionCancelRental, ownID))
		assert.True(t, user.Authorize(professional, user.ActionRenewRental, ownID))
		assert.True(t, user.Authorize(professional, user.ActionReadRental, ownID))
	})

	t.Run("professional on someone else's rental", func(t *testing.T) {
		assert.False(t, user.Authorize(professional, user.ActionUpdateRental, otherID))
		assert.False(t, user.Authorize(professional, user.ActionCancelRental, otherID))
		assert.False(t, user.Authorize(professional, user.ActionRenewRental, otherID))
		assert.False(t, user.Authorize(professional, user.ActionReadRental, otherID))
	})

	t.Run("remove is admin only even for the owner", func(t *testing.T) {
		assert.False(t, user.Authorize(professional, user.ActionRemoveRental, ownID))
	})

	t.Run("unknown role gets nothing", func(t *testing.T) {
		ghost := user.Actor{ID: uuid.New(), Role: user.Role("ghost")}
		for _, action := range allActions {
			assert.False(t, user.Authorize(ghost, action, uuid.Nil), action)
		}
	})
}
