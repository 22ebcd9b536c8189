package types

import (
	"github.com/samber/lo"
	ierr "github.com/subtrackr/subtrackr/internal/errors"
)

// BillingCycle is the recurrence unit governing how often a subscription bills
// ex DAILY, WEEKLY, MONTHLY, QUARTERLY, YEARLY
type BillingCycle string

// BillingCadence is the billing cadence for the subscription ex RECURRING, ONETIME
type BillingCadence string

const (
	// For BILLING_CADENCE_RECURRING
	BILLING_CYCLE_DAILY     BillingCycle = "DAILY"
	BILLING_CYCLE_WEEKLY    BillingCycle = "WEEKLY"
	BILLING_CYCLE_MONTHLY   BillingCycle = "MONTHLY"
	BILLING_CYCLE_QUARTERLY BillingCycle = "QUARTERLY"
	BILLING_CYCLE_YEARLY    BillingCycle = "YEARLY"

	BILLING_CADENCE_RECURRING BillingCadence = "RECURRING"
	BILLING_CADENCE_ONETIME   BillingCadence = "ONETIME"
)

func (c BillingCycle) String() string {
	return string(c)
}

func (c BillingCycle) Validate() error {
	allowedValues := []BillingCycle{
		BILLING_CYCLE_DAILY,
		BILLING_CYCLE_WEEKLY,
		BILLING_CYCLE_MONTHLY,
		BILLING_CYCLE_QUARTERLY,
		BILLING_CYCLE_YEARLY,
	}

	if !lo.Contains(allowedValues, c) {
		return ierr.NewError("invalid billing cycle").
			WithHint("Invalid billing cycle").
			WithReportableDetails(map[string]any{
				"allowed_values": allowedValues,
				"provided_value": c,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// MonthMultiplier returns how many calendar months one cycle step spans for
// month-anchored cycles, or 0 for cycles that are not month-anchored.
// Unrecognized cycle values follow monthly semantics so legacy data keeps
// billing instead of breaking the read path.
func (c BillingCycle) MonthMultiplier() int {
	switch c {
	case BILLING_CYCLE_MONTHLY:
		return 1
	case BILLING_CYCLE_QUARTERLY:
		return 3
	case BILLING_CYCLE_DAILY, BILLING_CYCLE_WEEKLY, BILLING_CYCLE_YEARLY:
		return 0
	default:
		return 1
	}
}

// IsMonthAnchored reports whether the cycle keeps a preferred day-of-month
// stable across steps.
func (c BillingCycle) IsMonthAnchored() bool {
	return c.MonthMultiplier() > 0
}

func (c BillingCadence) String() string {
	return string(c)
}

func (c BillingCadence) Validate() error {
	allowedValues := []BillingCadence{
		BILLING_CADENCE_RECURRING,
		BILLING_CADENCE_ONETIME,
	}

	if !lo.Contains(allowedValues, c) {
		return ierr.NewError("invalid billing cadence").
			WithHint("Invalid billing cadence").
			WithReportableDetails(map[string]any{
				"allowed_values": allowedValues,
				"provided_value": c,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
