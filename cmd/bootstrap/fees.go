package bootstrap

import (
	"staybook/internal/domain/pricing"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
)

// NewFeeSchedule translates environment configuration into the pricing
// domain's fee schedule.
func NewFeeSchedule(cfg config.FeesConfig) (pricing.FeeSchedule, error) {
	cleaning, err := pricing.NewMoneyFromInt(cfg.CleaningFeeCents)
	if err != nil {
		return pricing.FeeSchedule{}, errs.Mark(errs.Wrap(err, "cleaning fee"), errs.ErrInvalidFeeConfig)
	}

	var service pricing.ServiceFee
	if cfg.ServiceFeePercent > 0 {
		service, err = pricing.NewPercentServiceFee(cfg.ServiceFeePercent)
	} else {
		service, err = pricing.NewFixedServiceFee(cfg.ServiceFeeCents)
	}
	if err != nil {
		return pricing.FeeSchedule{}, errs.Mark(errs.Wrap(err, "service fee"), errs.ErrInvalidFeeConfig)
	}

	schedule, err := pricing.NewFeeSchedule(cleaning, service, cfg.TaxRatePercent)
	if err != nil {
		return pricing.FeeSchedule{}, errs.Mark(errs.Wrap(err, "fee schedule"), errs.ErrInvalidFeeConfig)
	}
	return schedule, nil
}
