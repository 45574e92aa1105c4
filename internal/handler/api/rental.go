package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "boxrent/internal/handler/dto/request"
	resdto "boxrent/internal/handler/dto/response"
	"boxrent/internal/handler/httperr"
	"boxrent/internal/handler/middleware"
	"boxrent/internal/usecase/commands"
	"boxrent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentalHandler struct {
	rentalCommands commands.RentalCommands
	rentalQueries  queries.RentalQueries
}

func NewRentalHandler(rentalCommands commands.RentalCommands, rentalQueries queries.RentalQueries) *RentalHandler {
	return &RentalHandler{
		rentalCommands: rentalCommands,
		rentalQueries:  rentalQueries,
	}
}

// @Summary Create rental
// @Description Create a long-term rental with a weekly schedule
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRentalRequest true "Rental request"
// @Success 201 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Router /rentals [post]
func (h *RentalHandler) CreateRental(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateRentalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.rentalCommands.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRentalView(view))
}

// @Summary Get rental
// @Description Get rental by ID
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id} [get]
func (h *RentalHandler) GetRental(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental ID format"})
		return
	}

	view, err := h.rentalQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRentalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		case errors.Is(err, queries.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to read this rental"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary List rentals
// @Description List rentals, optionally filtered by status, tenant or resource
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter: active"
// @Param tenant_id query string false "Filter by tenant"
// @Param resource_id query string false "Filter by resource"
// @Param expiring_within_days query int false "Filter: active rentals ending within N days"
// @Success 200 {array} resdto.RentalListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /rentals [get]
func (h *RentalHandler) ListRentals(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		items []*queries.RentalListItem
		err   error
	)
	switch {
	case c.Query("tenant_id") != "":
		tenantID, parseErr := uuid.Parse(c.Query("tenant_id"))
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID format"})
			return
		}
		items, err = h.rentalQueries.ListByTenant(ctx, tenantID)
	case c.Query("resource_id") != "":
		resourceID, parseErr := uuid.Parse(c.Query("resource_id"))
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID format"})
			return
		}
		items, err = h.rentalQueries.ListByResource(ctx, resourceID)
	case c.Query("expiring_within_days") != "":
		days, parseErr := strconv.Atoi(c.Query("expiring_within_days"))
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expiring_within_days value"})
			return
		}
		items, err = h.rentalQueries.ListExpiringWithin(ctx, days)
	case c.Query("status") == "active":
		items, err = h.rentalQueries.ListActive(ctx)
	default:
		items, err = h.rentalQueries.ListAll(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.RentalListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromRentalListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Update rental
// @Description Patch rental fields; footprint changes re-run the conflict check
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.UpdateRentalRequest true "Patch request"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Failure 422 {object} map[string]string
// @Router /rentals/{id} [patch]
func (h *RentalHandler) UpdateRental(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental ID format"})
		return
	}

	var req reqdto.UpdateRentalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.rentalCommands.Update(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Cancel rental
// @Description Cancel a rental with a reason; its slots free up immediately
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.CancelRentalRequest true "Cancellation reason"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals/{id}/cancel [post]
func (h *RentalHandler) CancelRental(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental ID format"})
		return
	}

	var req reqdto.CancelRentalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.rentalCommands.Cancel(c.Request.Context(), actor, id, req.Reason)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Renew rental
// @Description Extend an active rental by its duration class
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Failure 422 {object} map[string]string
// @Router /rentals/{id}/renew [post]
func (h *RentalHandler) RenewRental(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental ID format"})
		return
	}

	view, err := h.rentalCommands.Renew(c.Request.Context(), actor, id)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Remove rental
// @Description Permanently delete a non-active rental (admin only)
// @Tags rentals
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals/{id} [delete]
func (h *RentalHandler) RemoveRental(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental ID format"})
		return
	}

	if err := h.rentalCommands.Remove(c.Request.Context(), actor, id); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Preview conflicts
// @Description Dry-run conflict detection for a batch of rental candidates
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PreviewConflictsRequest true "Candidates"
// @Success 200 {array} resdto.ConflictGroupResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /rentals/conflicts/preview [post]
func (h *RentalHandler) PreviewConflicts(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.PreviewConflictsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	groups, err := h.rentalCommands.PreviewConflicts(c.Request.Context(), actor, req.ToInputs())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromConflictGroups(groups))
}

func (h *RentalHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRentalNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Rental not found", nil)
	case errors.Is(err, commands.ErrResourceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
	case errors.Is(err, commands.ErrTenantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Tenant not found", nil)
	case errors.Is(err, commands.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to perform this action", nil)
	case errors.Is(err, commands.ErrRentalConflict):
		var conflicts any
		var conflictErr *commands.ConflictError
		if errors.As(err, &conflictErr) {
			conflicts = resdto.FromConflictGroups(conflictErr.Groups)
		}
		httperr.AbortWithError(c, http.StatusConflict, err, "Rental conflicts with an existing schedule", conflicts)
	case errors.Is(err, commands.ErrUnsupportedRenewal):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Duration class does not support renewal", nil)
	case errors.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Illegal status transition", nil)
	case errors.Is(err, commands.ErrRemoveActiveRental):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Active rental cannot be removed", nil)
	case errors.Is(err, commands.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Rental validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
