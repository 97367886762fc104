package availability

import (
	"fmt"
	"time"
)

// CalendarDate is a timezone-free calendar day. Two time.Time values that
// render the same day in their own locations compare equal once collapsed
// into a CalendarDate, which is what calendar selection needs.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

func NewCalendarDate(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{year: y, month: m, day: d}
}

// DateOf normalizes out-of-range components the way time.Date does,
// so DateOf(2024, time.February, 30) is 2024-03-01.
func DateOf(year int, month time.Month, day int) CalendarDate {
	return NewCalendarDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Epoch is the first representable day, 1970-01-01.
func Epoch() CalendarDate {
	return NewCalendarDate(time.Unix(0, 0).UTC())
}

// Time returns midnight UTC of the day.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String renders the ISO calendar-day form, YYYY-MM-DD. This is the
// canonical key of a DisabledSet.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func (d CalendarDate) Next() CalendarDate {
	return NewCalendarDate(d.Time().AddDate(0, 0, 1))
}

func (d CalendarDate) Prev() CalendarDate {
	return NewCalendarDate(d.Time().AddDate(0, 0, -1))
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Time().Before(other.Time())
}

func (d CalendarDate) After(other CalendarDate) bool {
	return d.Time().After(other.Time())
}

func (d CalendarDate) Equal(other CalendarDate) bool {
	return d == other
}

// DaysUntil returns the whole-day distance to other, negative when other
// is earlier.
func (d CalendarDate) DaysUntil(other CalendarDate) int {
	return int(other.Time().Sub(d.Time()) / (24 * time.Hour))
}

// DateRange is an inclusive calendar span. Either end may be nil while a
// selection is in progress; expansion of a half-open range yields nothing.
type DateRange struct {
	From *CalendarDate
	To   *CalendarDate
}

func NewDateRange(from, to CalendarDate) DateRange {
	return DateRange{From: &from, To: &to}
}

func (r DateRange) Bounded() bool {
	return r.From != nil && r.To != nil
}

// Dates expands the range into ISO day strings, From through To inclusive.
// An unbounded range expands to nothing; so does a reversed one, which keeps
// a backwards drag in a calendar widget harmless rather than an error.
func (r DateRange) Dates() []string {
	if !r.Bounded() {
		return nil
	}
	var days []string
	for d := *r.From; !d.After(*r.To); d = d.Next() {
		days = append(days, d.String())
	}
	return days
}
