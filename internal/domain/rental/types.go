package rental

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusSuspended, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusExpired
}

// Occupies reports whether a rental in this status claims resource-time.
// Only PENDING and ACTIVE rentals participate in conflict detection.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusActive
}

var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusActive, StatusCancelled},
	StatusActive:    {StatusSuspended, StatusCancelled, StatusExpired},
	StatusSuspended: {StatusActive, StatusCancelled},
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

type DurationClass string

const (
	DurationMonthly   DurationClass = "MONTHLY"
	DurationQuarterly DurationClass = "QUARTERLY"
	DurationSemestral DurationClass = "SEMESTRAL"
	DurationAnnual    DurationClass = "ANNUAL"
	DurationCustom    DurationClass = "CUSTOM"
)

func (d DurationClass) String() string {
	return string(d)
}

func (d DurationClass) IsValid() bool {
	switch d {
	case DurationMonthly, DurationQuarterly, DurationSemestral, DurationAnnual, DurationCustom:
		return true
	default:
		return false
	}
}
