package availability

import "time"

// BuildBlockedPeriods turns the booking list into the spans a calendar must
// refuse: one span per booking, check-in through check-out verbatim, plus a
// single synthetic span covering the epoch through yesterday. Overlapping
// bookings are not merged; DisabledSet membership dedupes downstream.
//
// today comes from the caller's clock so the result is reproducible.
func BuildBlockedPeriods(bookings []Booking, today time.Time) []DateRange {
	day := NewCalendarDate(today)

	periods := make([]DateRange, 0, len(bookings)+1)
	for _, b := range bookings {
		periods = append(periods, NewDateRange(NewCalendarDate(b.CheckIn), NewCalendarDate(b.CheckOut)))
	}
	// The permanent past. On the epoch day itself this span is reversed
	// and expands to nothing.
	periods = append(periods, NewDateRange(Epoch(), day.Prev()))
	return periods
}

// DisabledDates materializes blocked periods into per-day membership.
// Periods missing either bound are skipped, and days before today are
// suppressed even inside a booking span, so a stale booking list cannot
// resurrect the past. Both suppressions overlap with the synthetic past
// period from BuildBlockedPeriods; the overlap is intentional.
func DisabledDates(periods []DateRange, today time.Time) DisabledSet {
	set := DisabledSet{}
	if len(periods) == 0 {
		return set
	}

	cutoff := NewCalendarDate(today)
	for _, p := range periods {
		if !p.Bounded() {
			continue
		}
		for d := *p.From; !d.After(*p.To); d = d.Next() {
			if d.Before(cutoff) {
				continue
			}
			set[d.String()] = true
		}
	}
	return set
}
