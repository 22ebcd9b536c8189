package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/subtrackr/subtrackr/internal/types"
)

type Configuration struct {
	Logging   LoggingConfig   `validate:"required"`
	Billing   BillingConfig   `validate:"required"`
	Reminders RemindersConfig `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// BillingConfig carries the safety valves for the billing-date engine.
// The caps bound the cycle-walking loops against pathological
// configurations (e.g. a zero interval); daily cycles need far more steps
// to cross a month boundary than yearly ones, hence the ratio.
type BillingConfig struct {
	IterationCaps IterationCaps
}

type IterationCaps struct {
	Daily     int `mapstructure:"daily" validate:"gt=0"`
	Weekly    int `mapstructure:"weekly" validate:"gt=0"`
	Monthly   int `mapstructure:"monthly" validate:"gt=0"`
	Quarterly int `mapstructure:"quarterly" validate:"gt=0"`
	Yearly    int `mapstructure:"yearly" validate:"gt=0"`
}

// ForCycle returns the iteration cap for the given billing cycle. Unknown
// cycles share the monthly cap, matching the engine's monthly fallback.
func (c IterationCaps) ForCycle(cycle types.BillingCycle) int {
	switch cycle {
	case types.BILLING_CYCLE_DAILY:
		return c.Daily
	case types.BILLING_CYCLE_WEEKLY:
		return c.Weekly
	case types.BILLING_CYCLE_MONTHLY:
		return c.Monthly
	case types.BILLING_CYCLE_QUARTERLY:
		return c.Quarterly
	case types.BILLING_CYCLE_YEARLY:
		return c.Yearly
	default:
		return c.Monthly
	}
}

// RemindersConfig lists how many days before a due date a reminder fires.
type RemindersConfig struct {
	OffsetsDays []int `mapstructure:"offsets_days" validate:"required,dive,gt=0"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/subtrackr")

	v.SetEnvPrefix("SUBTRACKR")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("billing.iterationcaps.daily", 1000)
	v.SetDefault("billing.iterationcaps.weekly", 100)
	v.SetDefault("billing.iterationcaps.monthly", 50)
	v.SetDefault("billing.iterationcaps.quarterly", 50)
	v.SetDefault("billing.iterationcaps.yearly", 50)
	v.SetDefault("reminders.offsets_days", []int{30, 7, 3, 1})
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development.
// This is useful for running scripts, tests or other non-web applications.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{Level: types.LogLevelDebug},
		Billing: BillingConfig{
			IterationCaps: IterationCaps{
				Daily:     1000,
				Weekly:    100,
				Monthly:   50,
				Quarterly: 50,
				Yearly:    50,
			},
		},
		Reminders: RemindersConfig{OffsetsDays: []int{30, 7, 3, 1}},
	}
}
