package rental

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	ErrInvalidDateRange    = errors.New("start date must not be after end date")
	ErrInvalidSlotTime     = errors.New("slot start time must be before end time")
	ErrInvalidTimeFormat   = errors.New("time must be in HH:MM format")
	ErrEmptySchedule       = errors.New("weekly schedule must contain at least one slot")
	ErrScheduleSelfOverlap = errors.New("weekly schedule slots overlap each other")
	ErrNegativeAmount      = errors.New("monetary amount cannot be negative")
)

// DateRange is a closed calendar-date interval. Times are normalized to
// midnight UTC so equality and ordering never depend on the wall clock of
// the caller.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s := TruncateToDate(start)
	e := TruncateToDate(end)
	if s.After(e) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: e}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Overlaps is a closed-interval test: ranges that merely touch at an
// endpoint count as overlapping.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !other.start.After(r.end)
}

// Contains reports whether the given calendar date falls inside the range,
// endpoints included.
func (r DateRange) Contains(date time.Time) bool {
	d := TruncateToDate(date)
	return !d.Before(r.start) && !d.After(r.end)
}

// WithEnd returns a copy of the range extended (or shrunk) to the given end date.
func (r DateRange) WithEnd(end time.Time) (DateRange, error) {
	return NewDateRange(r.start, end)
}

// TruncateToDate normalizes an instant to its UTC calendar date. Every
// date that crosses a layer boundary goes through this so the weekday and
// the stored date always describe the same day.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.In(time.UTC).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ScheduleSlot is one recurring weekly occupancy window: a weekday plus a
// time-of-day interval held as minutes since midnight.
type ScheduleSlot struct {
	weekday  time.Weekday
	startMin int
	endMin   int
	active   bool
}

func NewScheduleSlot(weekday time.Weekday, startTime, endTime string, active bool) (ScheduleSlot, error) {
	start, err := parseMinutes(startTime)
	if err != nil {
		return ScheduleSlot{}, err
	}
	end, err := parseMinutes(endTime)
	if err != nil {
		return ScheduleSlot{}, err
	}
	return NewScheduleSlotMinutes(weekday, start, end, active)
}

func NewScheduleSlotMinutes(weekday time.Weekday, startMin, endMin int, active bool) (ScheduleSlot, error) {
	if startMin < 0 || endMin > 24*60 || startMin >= endMin {
		return ScheduleSlot{}, ErrInvalidSlotTime
	}
	return ScheduleSlot{
		weekday:  weekday,
		startMin: startMin,
		endMin:   endMin,
		active:   active,
	}, nil
}

func (s ScheduleSlot) Weekday() time.Weekday { return s.weekday }
func (s ScheduleSlot) StartMinutes() int     { return s.startMin }
func (s ScheduleSlot) EndMinutes() int       { return s.endMin }
func (s ScheduleSlot) Active() bool          { return s.active }

func (s ScheduleSlot) StartTime() string { return formatMinutes(s.startMin) }
func (s ScheduleSlot) EndTime() string   { return formatMinutes(s.endMin) }

func (s ScheduleSlot) String() string {
	return fmt.Sprintf("%s %s-%s", s.weekday, s.StartTime(), s.EndTime())
}

// Overlaps is an open-interval test on the same weekday: a slot ending
// exactly when another begins does not overlap. Inactive slots never
// overlap anything. The open/closed asymmetry with DateRange.Overlaps is
// deliberate and load-bearing: back-to-back bookings on the same day are
// legal, back-to-back date ranges are not.
func (s ScheduleSlot) Overlaps(other ScheduleSlot) bool {
	if !s.active || !other.active {
		return false
	}
	if s.weekday != other.weekday {
		return false
	}
	return s.startMin < other.endMin && other.startMin < s.endMin
}

func parseMinutes(hhmm string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return 0, ErrInvalidTimeFormat
	}
	if h < 0 || h > 24 || m < 0 || m > 59 {
		return 0, ErrInvalidTimeFormat
	}
	return h*60 + m, nil
}

func formatMinutes(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// WeeklySchedule is the ordered set of slots a rental claims each week.
type WeeklySchedule []ScheduleSlot

// NewWeeklySchedule validates the slot set and orders it by weekday then
// start time. A schedule whose own active slots overlap is rejected at
// construction so the conflict detector can assume internally consistent
// candidates.
func NewWeeklySchedule(slots []ScheduleSlot) (WeeklySchedule, error) {
	if len(slots) == 0 {
		return nil, ErrEmptySchedule
	}

	ordered := make([]ScheduleSlot, len(slots))
	copy(ordered, slots)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].weekday != ordered[j].weekday {
			return ordered[i].weekday < ordered[j].weekday
		}
		return ordered[i].startMin < ordered[j].startMin
	})

	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			if ordered[i].Overlaps(ordered[j]) {
				return nil, ErrScheduleSelfOverlap
			}
		}
	}

	return WeeklySchedule(ordered), nil
}

// SlotsFor returns the active slots claimed on the given weekday.
func (ws WeeklySchedule) SlotsFor(weekday time.Weekday) []ScheduleSlot {
	var out []ScheduleSlot
	for _, s := range ws {
		if s.weekday == weekday && s.active {
			out = append(out, s)
		}
	}
	return out
}

// Money is a non-negative amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }
