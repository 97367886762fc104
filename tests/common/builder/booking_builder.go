//go:build unit

package builder

import (
	"time"

	"staybook/internal/domain/availability"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		CheckIn:    time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 13, 11, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithSpan(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) Build() availability.Booking {
	return availability.Booking{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
	}
}
