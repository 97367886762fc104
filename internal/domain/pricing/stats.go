package pricing

import "github.com/google/uuid"

// ReservationTotal is one settled reservation's contribution to dashboard
// stats; the caller's store produces these rows.
type ReservationTotal struct {
	PropertyID uuid.UUID
	Nights     int
	Amount     Money
}

type ReservationStats struct {
	Properties int
	Nights     int
	Amount     Money
}

// SummarizeReservations aggregates reservations into the distinct-property
// count, total nights, and total amount.
func SummarizeReservations(rows []ReservationTotal) ReservationStats {
	properties := make(map[uuid.UUID]struct{}, len(rows))
	stats := ReservationStats{}
	for _, r := range rows {
		properties[r.PropertyID] = struct{}{}
		stats.Nights += r.Nights
		stats.Amount = stats.Amount.Add(r.Amount)
	}
	stats.Properties = len(properties)
	return stats
}
