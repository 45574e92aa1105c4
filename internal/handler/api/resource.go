package api

import (
	"errors"
	"net/http"

	reqdto "boxrent/internal/handler/dto/request"
	resdto "boxrent/internal/handler/dto/response"
	"boxrent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResourceHandler struct {
	resourceQueries     queries.ResourceQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewResourceHandler(resourceQueries queries.ResourceQueries, availabilityQueries queries.AvailabilityQueries) *ResourceHandler {
	return &ResourceHandler{
		resourceQueries:     resourceQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List resources
// @Description List all rentable boxes
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ResourceResponse
// @Failure 401 {object} map[string]string
// @Router /resources [get]
func (h *ResourceHandler) ListResources(c *gin.Context) {
	views, err := h.resourceQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.ResourceResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromResourceView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get resource
// @Description Get resource by ID
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id} [get]
func (h *ResourceHandler) GetResource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID format"})
		return
	}

	view, err := h.resourceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

// @Summary Check availability
// @Description Check whether the given slots are free on a concrete date
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.AvailabilityRequest true "Date and slots"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /resources/{id}/availability [post]
func (h *ResourceHandler) CheckAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID format"})
		return
	}

	var req reqdto.AvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	slots, err := req.ToSlots()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slot definition"})
		return
	}

	result, err := h.availabilityQueries.CheckAvailability(c.Request.Context(), id, req.Date, slots)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityResult(result))
}
