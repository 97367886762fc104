package availability

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a confirmed reservation as the caller's store holds it. This
// package only reads it.
type Booking struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
}

// DisabledSet maps ISO day strings to a blocked flag. It is rebuilt on
// every call and carries no identity beyond one render cycle.
type DisabledSet map[string]bool

func (s DisabledSet) Contains(day string) bool {
	return s[day]
}

// FirstConflict reports the earliest day of the candidate range that is
// already blocked.
func (s DisabledSet) FirstConflict(r DateRange) (string, bool) {
	for _, day := range r.Dates() {
		if s[day] {
			return day, true
		}
	}
	return "", false
}

func (s DisabledSet) Blocks(r DateRange) bool {
	_, conflict := s.FirstConflict(r)
	return conflict
}
