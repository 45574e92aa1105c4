package user

import "github.com/google/uuid"

// Action is a capability the lifecycle manager gates before mutating.
type Action string

const (
	ActionCreateRental = Action("rental:create")
	ActionUpdateRental = Action("rental:update")
	ActionCancelRental = Action("rental:cancel")
	ActionRenewRental  = Action("rental:renew")
	ActionRemoveRental = Action("rental:remove")
	ActionReadRental   = Action("rental:read")
)

// Actor is the authenticated principal attempting an action.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// Authorize is a pure capability check, kept orthogonal to conflict
// detection. Admins can do everything; professionals operate only on
// rentals they hold. ownerID is the tenant holding the target rental, or
// uuid.Nil when the action has no owner yet (create, list).
func Authorize(actor Actor, action Action, ownerID uuid.UUID) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	if actor.Role != RoleProfessional {
		return false
	}

	switch action {
	case ActionCreateRental:
		return true
	case ActionUpdateRental, ActionCancelRental, ActionRenewRental, ActionReadRental:
		return ownerID == actor.ID
	case ActionRemoveRental:
		// Hard deletion bypasses cancellation bookkeeping; admin only.
		return false
	default:
		return false
	}
}
