package pricing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"staybook/internal/domain/availability"
)

var (
	ErrNegativeAmount    = errors.New("money cannot be negative")
	ErrInvalidStayRange  = errors.New("check-out must be after check-in")
	ErrInvalidServiceFee = errors.New("service fee percentage must be between 0 and 100")
	ErrInvalidTaxRate    = errors.New("tax rate must be between 0 and 100")
	ErrNegativeRate      = errors.New("nightly rate cannot be negative")
)

// Money is an amount in minor currency units. Keeping cents as the unit
// means the order total is already in the shape a payment session wants.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromInt(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MultiplyNights(nights int) Money {
	return Money{cents: m.cents * int64(nights)}
}

// Format renders en-US currency, e.g. $1,234.56.
func (m Money) Format() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := fmt.Sprintf("%d", cents/100)

	var grouped strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		grouped.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteString(whole[i : i+3])
	}
	return fmt.Sprintf("%s$%s.%02d", sign, grouped.String(), cents%100)
}

// ServiceFee is either a flat amount or a percentage of the sub-total.
type ServiceFee struct {
	flatCents *int64
	percent   *float64
}

func NewFixedServiceFee(cents int64) (ServiceFee, error) {
	if cents < 0 {
		return ServiceFee{}, ErrNegativeAmount
	}
	return ServiceFee{flatCents: &cents}, nil
}

func NewPercentServiceFee(percent float64) (ServiceFee, error) {
	if percent < 0 || percent > 100 {
		return ServiceFee{}, ErrInvalidServiceFee
	}
	return ServiceFee{percent: &percent}, nil
}

func (f ServiceFee) IsPercentage() bool {
	return f.percent != nil
}

// AmountCents returns the exact fee without rounding; the calculator rounds
// once at the end.
func (f ServiceFee) AmountCents(subTotalCents int64) float64 {
	switch {
	case f.percent != nil:
		return float64(subTotalCents) * *f.percent / 100.0
	case f.flatCents != nil:
		return float64(*f.flatCents)
	default:
		return 0
	}
}

// FeeSchedule carries every constant the calculator needs. Fees are injected
// here, never embedded in the arithmetic, so per-listing or per-region
// schedules stay a construction-time concern.
type FeeSchedule struct {
	Cleaning       Money
	Service        ServiceFee
	TaxRatePercent float64
}

// NewFeeSchedule validates the tax rate; tax applies to the sub-total only.
func NewFeeSchedule(cleaning Money, service ServiceFee, taxRatePercent float64) (FeeSchedule, error) {
	if cleaning.IsNegative() {
		return FeeSchedule{}, ErrNegativeAmount
	}
	if taxRatePercent < 0 || taxRatePercent > 100 {
		return FeeSchedule{}, ErrInvalidTaxRate
	}
	return FeeSchedule{
		Cleaning:       cleaning,
		Service:        service,
		TaxRatePercent: taxRatePercent,
	}, nil
}

// Stay is a validated check-in/check-out pair at calendar-day granularity.
// A reversed or zero-night pair is rejected outright rather than masked by
// taking an absolute difference.
type Stay struct {
	checkIn  availability.CalendarDate
	checkOut availability.CalendarDate
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	in := availability.NewCalendarDate(checkIn)
	out := availability.NewCalendarDate(checkOut)
	if !out.After(in) {
		return Stay{}, ErrInvalidStayRange
	}
	return Stay{checkIn: in, checkOut: out}, nil
}

func (s Stay) CheckIn() availability.CalendarDate {
	return s.checkIn
}

func (s Stay) CheckOut() availability.CalendarDate {
	return s.checkOut
}

func (s Stay) Nights() int {
	return s.checkIn.DaysUntil(s.checkOut)
}

// Range is the stay as a selection span, check-in through check-out
// inclusive, for conflict checks against a DisabledSet.
func (s Stay) Range() availability.DateRange {
	return availability.NewDateRange(s.checkIn, s.checkOut)
}
