//go:build unit

package availability_test

import (
	"testing"
	"time"

	"staybook/internal/domain/availability"

	"github.com/stretchr/testify/assert"
)

func TestCalendarDate(t *testing.T) {
	t.Run("discards time of day", func(t *testing.T) {
		morning := availability.NewCalendarDate(time.Date(2024, 3, 1, 8, 15, 0, 0, time.UTC))
		night := availability.NewCalendarDate(time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC))

		assert.True(t, morning.Equal(night))
		assert.Equal(t, "2024-03-01", morning.String())
	})

	t.Run("keeps the civil day of the input location", func(t *testing.T) {
		auckland := time.FixedZone("NZDT", 13*60*60)
		late := availability.NewCalendarDate(time.Date(2024, 3, 2, 1, 30, 0, 0, auckland))

		assert.Equal(t, "2024-03-02", late.String())
	})

	t.Run("Next crosses month and year boundaries", func(t *testing.T) {
		assert.Equal(t, "2024-02-01", availability.DateOf(2024, time.January, 31).Next().String())
		assert.Equal(t, "2024-01-01", availability.DateOf(2023, time.December, 31).Next().String())
		assert.Equal(t, "2024-02-29", availability.DateOf(2024, time.February, 28).Next().String())
	})

	t.Run("Prev of the epoch is before the epoch", func(t *testing.T) {
		yesterday := availability.Epoch().Prev()

		assert.Equal(t, "1969-12-31", yesterday.String())
		assert.True(t, yesterday.Before(availability.Epoch()))
	})

	t.Run("DaysUntil is signed", func(t *testing.T) {
		checkIn := availability.DateOf(2024, time.January, 1)
		checkOut := availability.DateOf(2024, time.January, 4)

		assert.Equal(t, 3, checkIn.DaysUntil(checkOut))
		assert.Equal(t, -3, checkOut.DaysUntil(checkIn))
		assert.Equal(t, 0, checkIn.DaysUntil(checkIn))
	})

	t.Run("DateOf normalizes overflow like time.Date", func(t *testing.T) {
		assert.Equal(t, "2024-03-01", availability.DateOf(2024, time.February, 30).String())
	})
}

func TestDateRangeDates(t *testing.T) {
	day := func(y int, m time.Month, d int) *availability.CalendarDate {
		cd := availability.DateOf(y, m, d)
		return &cd
	}

	cases := []struct {
		name string
		r    availability.DateRange
		want []string
	}{
		{
			name: "multi day span is inclusive of both ends",
			r:    availability.DateRange{From: day(2024, time.January, 1), To: day(2024, time.January, 4)},
			want: []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"},
		},
		{
			name: "single day span yields exactly one date",
			r:    availability.DateRange{From: day(2024, time.January, 1), To: day(2024, time.January, 1)},
			want: []string{"2024-01-01"},
		},
		{
			name: "missing From yields nothing",
			r:    availability.DateRange{To: day(2024, time.January, 4)},
		},
		{
			name: "missing To yields nothing",
			r:    availability.DateRange{From: day(2024, time.January, 1)},
		},
		{
			name: "empty selection yields nothing",
			r:    availability.DateRange{},
		},
		{
			name: "reversed span yields nothing",
			r:    availability.DateRange{From: day(2024, time.January, 4), To: day(2024, time.January, 1)},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.r.Dates()
			if c.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, c.want, got)
			}
		})
	}
}
