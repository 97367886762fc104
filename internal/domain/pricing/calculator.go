package pricing

import "math"

// Breakdown is the itemized cost of a stay. SubTotal and Cleaning are exact;
// Service and Tax lines are rounded for presentation, while OrderTotal is
// rounded exactly once from the unrounded sum, so the lines may differ from
// the total by under a cent.
type Breakdown struct {
	TotalNights int
	SubTotal    Money
	Cleaning    Money
	Service     Money
	Tax         Money
	OrderTotal  Money
}

// CheckoutAmount is the order total in minor currency units, the form a
// payment session expects.
func (b Breakdown) CheckoutAmount() int64 {
	return b.OrderTotal.Cents()
}

type Calculator struct {
	fees FeeSchedule
}

func NewCalculator(fees FeeSchedule) *Calculator {
	return &Calculator{fees: fees}
}

// Quote prices a stay at the given nightly rate. Tax applies to the
// sub-total only, never to sub-total plus fees.
func (c *Calculator) Quote(stay Stay, nightlyRate Money) (Breakdown, error) {
	if nightlyRate.IsNegative() {
		return Breakdown{}, ErrNegativeRate
	}

	nights := stay.Nights()
	subTotal := nightlyRate.MultiplyNights(nights)

	serviceExact := c.fees.Service.AmountCents(subTotal.Cents())
	taxExact := float64(subTotal.Cents()) * c.fees.TaxRatePercent / 100.0
	totalExact := float64(subTotal.Cents()+c.fees.Cleaning.Cents()) + serviceExact + taxExact

	return Breakdown{
		TotalNights: nights,
		SubTotal:    subTotal,
		Cleaning:    c.fees.Cleaning,
		Service:     NewMoney(roundHalfAwayFromZero(serviceExact)),
		Tax:         NewMoney(roundHalfAwayFromZero(taxExact)),
		OrderTotal:  NewMoney(roundHalfAwayFromZero(totalExact)),
	}, nil
}

func roundHalfAwayFromZero(cents float64) int64 {
	if cents >= 0 {
		return int64(math.Floor(cents + 0.5))
	}
	return int64(math.Ceil(cents - 0.5))
}
