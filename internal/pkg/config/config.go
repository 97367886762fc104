package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between deployments and have no safe default
// - default: the fee schedule the original marketplace shipped with
// -----------------------------------------------------------------------------

type Config struct {
	Fees FeesConfig
	Log  LogConfig
}

// FeesConfig is the pricing calculator's constants. SERVICE_FEE_PERCENT
// above zero switches the service fee from the flat amount to a percentage
// of the sub-total.
type FeesConfig struct {
	CleaningFeeCents  int64   `envconfig:"CLEANING_FEE_CENTS" default:"2500"`
	ServiceFeeCents   int64   `envconfig:"SERVICE_FEE_CENTS" default:"4000"`
	ServiceFeePercent float64 `envconfig:"SERVICE_FEE_PERCENT" default:"0"`
	TaxRatePercent    float64 `envconfig:"TAX_RATE_PERCENT" default:"10"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Fees: FeesConfig{
			CleaningFeeCents: 2500,
			ServiceFeeCents:  4000,
			TaxRatePercent:   10,
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
	}
}
