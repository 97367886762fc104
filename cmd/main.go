// Worked example: builds the disabled-date set for a small booking list and
// prices a candidate stay with the configured fee schedule.
package main

import (
	"log/slog"
	"os"

	"staybook/cmd/bootstrap"
	"staybook/internal/domain/availability"
	"staybook/internal/domain/pricing"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := bootstrap.NewLogger(cfg.Log)

	fees, err := bootstrap.NewFeeSchedule(cfg.Fees)
	if err != nil {
		fatal(logger, "invalid fee schedule", err)
	}

	clk := clock.NewRealClock()
	today := clk.Now()

	propertyID := uuid.New()
	bookings := []availability.Booking{
		{
			ID:         uuid.New(),
			PropertyID: propertyID,
			CheckIn:    today.AddDate(0, 0, 3),
			CheckOut:   today.AddDate(0, 0, 6),
		},
		{
			ID:         uuid.New(),
			PropertyID: propertyID,
			CheckIn:    today.AddDate(0, 0, 10),
			CheckOut:   today.AddDate(0, 0, 12),
		},
	}

	periods := availability.BuildBlockedPeriods(bookings, today)
	disabled := availability.DisabledDates(periods, today)
	logger.Info("calendar built", "bookings", len(bookings), "disabled_days", len(disabled))

	stay, err := pricing.NewStay(today.AddDate(0, 0, 14), today.AddDate(0, 0, 17))
	if err != nil {
		fatal(logger, "invalid stay", err)
	}
	if day, conflict := disabled.FirstConflict(stay.Range()); conflict {
		fatal(logger, "stay overlaps a booked day", errs.Wrapf(errs.ErrDatesUnavailable, "blocked on %s", day))
	}

	quote, err := pricing.NewCalculator(fees).Quote(stay, pricing.NewMoney(10000))
	if err != nil {
		fatal(logger, "quote failed", err)
	}
	logger.Info("quote",
		"check_in", stay.CheckIn().String(),
		"check_out", stay.CheckOut().String(),
		"nights", quote.TotalNights,
		"sub_total", quote.SubTotal.Format(),
		"cleaning", quote.Cleaning.Format(),
		"service", quote.Service.Format(),
		"tax", quote.Tax.Format(),
		"order_total", quote.OrderTotal.Format(),
		"checkout_amount", quote.CheckoutAmount(),
	)
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err, "stack", errs.ExtractStackLines(err, 5))
	os.Exit(1)
}
