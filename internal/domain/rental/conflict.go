package rental

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Candidate is the occupancy footprint a mutation wants to claim, detached
// from any persisted rental so create and update share one detection path.
type Candidate struct {
	ResourceID uuid.UUID
	Range      DateRange
	Schedule   WeeklySchedule
}

// Conflict names the first colliding slot pair so callers can propose an
// alternative instead of parsing prose.
type Conflict struct {
	Weekday       time.Weekday
	RequestedSlot ScheduleSlot
	ExistingSlot  ScheduleSlot
	RentalID      uuid.UUID
	TenantID      uuid.UUID
}

// FindConflict returns the first conflict between the candidate and any
// PENDING or ACTIVE rental on the same resource, or nil if the footprint is
// clear. excludeID skips the rental being updated; pass uuid.Nil for create.
func FindConflict(candidate Candidate, existing []*Rental, excludeID uuid.UUID) *Conflict {
	for _, e := range relevant(candidate, existing, excludeID) {
		if !candidate.Range.Overlaps(e.dateRange) {
			continue
		}
		for _, req := range candidate.Schedule {
			for _, occ := range e.schedule {
				if req.Overlaps(occ) {
					return &Conflict{
						Weekday:       req.Weekday(),
						RequestedSlot: req,
						ExistingSlot:  occ,
						RentalID:      e.id,
						TenantID:      e.tenantID,
					}
				}
			}
		}
	}
	return nil
}

// FindAllConflicts collects every colliding slot pair instead of failing
// fast. Used by bulk assignment where tens of conflicts are realistic.
func FindAllConflicts(candidate Candidate, existing []*Rental, excludeID uuid.UUID) []Conflict {
	var conflicts []Conflict
	for _, e := range relevant(candidate, existing, excludeID) {
		if !candidate.Range.Overlaps(e.dateRange) {
			continue
		}
		for _, req := range candidate.Schedule {
			for _, occ := range e.schedule {
				if req.Overlaps(occ) {
					conflicts = append(conflicts, Conflict{
						Weekday:       req.Weekday(),
						RequestedSlot: req,
						ExistingSlot:  occ,
						RentalID:      e.id,
						TenantID:      e.tenantID,
					})
				}
			}
		}
	}
	return conflicts
}

func relevant(candidate Candidate, existing []*Rental, excludeID uuid.UUID) []*Rental {
	out := make([]*Rental, 0, len(existing))
	for _, e := range existing {
		if e.resourceID != candidate.ResourceID {
			continue
		}
		if !e.status.Occupies() {
			continue
		}
		if excludeID != uuid.Nil && e.id == excludeID {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ConflictGroup aggregates conflicts by (weekday, resource) so a recurring
// pattern that collides across dozens of calendar weeks reports once, with
// the distinct slot sets and the affected date span.
type ConflictGroup struct {
	Weekday        time.Weekday
	ResourceID     uuid.UUID
	RequestedSlots []ScheduleSlot
	ExistingSlots  []ScheduleSlot
	RentalIDs      []uuid.UUID
	SpanStart      time.Time
	SpanEnd        time.Time
}

// GroupConflicts folds a flat conflict list into per-(weekday, resource)
// groups. span is the candidate's date range; the group span is clipped to it.
func GroupConflicts(resourceID uuid.UUID, span DateRange, conflicts []Conflict) []ConflictGroup {
	byWeekday := make(map[time.Weekday]*ConflictGroup)
	for _, c := range conflicts {
		g, ok := byWeekday[c.Weekday]
		if !ok {
			g = &ConflictGroup{
				Weekday:    c.Weekday,
				ResourceID: resourceID,
				SpanStart:  span.Start(),
				SpanEnd:    span.End(),
			}
			byWeekday[c.Weekday] = g
		}
		g.RequestedSlots = appendSlotOnce(g.RequestedSlots, c.RequestedSlot)
		g.ExistingSlots = appendSlotOnce(g.ExistingSlots, c.ExistingSlot)
		g.RentalIDs = appendIDOnce(g.RentalIDs, c.RentalID)
	}

	groups := make([]ConflictGroup, 0, len(byWeekday))
	for _, g := range byWeekday {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Weekday < groups[j].Weekday })
	return groups
}

func appendSlotOnce(slots []ScheduleSlot, slot ScheduleSlot) []ScheduleSlot {
	for _, s := range slots {
		if s == slot {
			return slots
		}
	}
	return append(slots, slot)
}

func appendIDOnce(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
