//go:build unit

package builder

import (
	"time"

	"staybook/internal/domain/pricing"
)

// QuoteBuilder defaults to the canonical three-night stay: $100/night,
// $25 cleaning, flat $40 service, 10% tax.
type QuoteBuilder struct {
	CheckIn           time.Time
	CheckOut          time.Time
	NightlyRateCents  int64
	CleaningFeeCents  int64
	ServiceFeeCents   int64
	ServiceFeePercent float64
	TaxRatePercent    float64
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		CheckIn:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:         time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		NightlyRateCents: 10000,
		CleaningFeeCents: 2500,
		ServiceFeeCents:  4000,
		TaxRatePercent:   10,
	}
}

func (q *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(q)
	return q
}

func (q *QuoteBuilder) BuildStay() (pricing.Stay, error) {
	return pricing.NewStay(q.CheckIn, q.CheckOut)
}

func (q *QuoteBuilder) BuildSchedule() (pricing.FeeSchedule, error) {
	cleaning, err := pricing.NewMoneyFromInt(q.CleaningFeeCents)
	if err != nil {
		return pricing.FeeSchedule{}, err
	}

	var service pricing.ServiceFee
	if q.ServiceFeePercent > 0 {
		service, err = pricing.NewPercentServiceFee(q.ServiceFeePercent)
	} else {
		service, err = pricing.NewFixedServiceFee(q.ServiceFeeCents)
	}
	if err != nil {
		return pricing.FeeSchedule{}, err
	}

	return pricing.NewFeeSchedule(cleaning, service, q.TaxRatePercent)
}

func (q *QuoteBuilder) BuildQuote() (pricing.Breakdown, error) {
	stay, err := q.BuildStay()
	if err != nil {
		return pricing.Breakdown{}, err
	}
	schedule, err := q.BuildSchedule()
	if err != nil {
		return pricing.Breakdown{}, err
	}
	return pricing.NewCalculator(schedule).Quote(stay, pricing.NewMoney(q.NightlyRateCents))
}
