package resource

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("resource name cannot be empty")
)

// Resource is a rentable box: a physical room registered under a site.
// The rental scheduler only needs identity and ownership; equipment and
// pricing catalogs live with the registry.
type Resource struct {
	id      uuid.UUID
	name    string
	siteID  uuid.UUID
	ownerID uuid.UUID
}

func NewResource(id uuid.UUID, name string, siteID, ownerID uuid.UUID) (*Resource, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}
	return &Resource{
		id:      id,
		name:    trimmed,
		siteID:  siteID,
		ownerID: ownerID,
	}, nil
}

func (r *Resource) ID() uuid.UUID      { return r.id }
func (r *Resource) Name() string       { return r.name }
func (r *Resource) SiteID() uuid.UUID  { return r.siteID }
func (r *Resource) OwnerID() uuid.UUID { return r.ownerID }
