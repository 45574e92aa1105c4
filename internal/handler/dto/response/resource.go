package response

import (
	"boxrent/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	SiteID uuid.UUID `json:"siteId"`
}

func FromResourceView(rm *queries.ResourceView) *ResourceResponse {
	return &ResourceResponse{
		ID:     rm.ID,
		Name:   rm.Name,
		SiteID: rm.SiteID,
	}
}
