package subscription

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subtrackr/subtrackr/internal/billing"
	"github.com/subtrackr/subtrackr/internal/types"
)

type Subscription struct {
	// ID is the unique identifier for the subscription
	ID string `db:"id" json:"id"`

	// Name is the display name of the subscription, e.g. "Netflix"
	Name string `db:"name" json:"name"`

	// Price is the amount charged per billing cycle
	Price decimal.Decimal `db:"price" json:"price"`

	// Currency is the currency of the subscription in lowercase 3 digit ISO codes
	Currency string `db:"currency" json:"currency"`

	// BillingCycle is the recurrence unit of the billing cycle
	BillingCycle types.BillingCycle `db:"billing_cycle" json:"billing_cycle"`

	// BillingCadence distinguishes recurring subscriptions from one-time charges
	BillingCadence types.BillingCadence `db:"billing_cadence" json:"billing_cadence"`

	// BillingInterval is the multiplier applied to the cycle unit,
	// e.g. 2 with a monthly cycle bills every 2 months
	BillingInterval int `db:"billing_interval" json:"billing_interval"`

	// BillingCycleDay is the preferred day-of-month that keeps monthly and
	// quarterly billing dates stable across varying month lengths. Nil for
	// daily/weekly/yearly cycles. Derived from FirstBillingDate's
	// day-of-month and recalculated whenever FirstBillingDate is edited.
	BillingCycleDay *int `db:"billing_cycle_day" json:"billing_cycle_day"`

	// FirstBillingDate is the baseline date from which all billing cycles
	// are counted. It may be before or after StartDate.
	FirstBillingDate time.Time `db:"first_billing_date" json:"first_billing_date"`

	// StartDate is when the subscription became active. Used only to test
	// whether the subscription was active during a given month.
	StartDate time.Time `db:"start_date" json:"start_date"`

	// EndDate is when the subscription ended, if it has
	EndDate *time.Time `db:"end_date" json:"end_date"`

	// CategoryID is the identifier of the spending category, if any
	CategoryID string `db:"category_id" json:"category_id"`

	// PaymentMethodID is the identifier of the payment method used to pay
	PaymentMethodID string `db:"payment_method_id" json:"payment_method_id"`

	// Notes is free-form user text
	Notes string `db:"notes" json:"notes"`

	types.BaseModel
}

// BillingConfig projects the subscription onto the value object consumed by
// the billing-date engine.
func (s *Subscription) BillingConfig() billing.Config {
	return billing.Config{
		Cycle:            s.BillingCycle,
		Cadence:          s.BillingCadence,
		Interval:         s.BillingInterval,
		CycleDay:         s.BillingCycleDay,
		FirstBillingDate: s.FirstBillingDate,
		StartDate:        s.StartDate,
		EndDate:          s.EndDate,
		Price:            s.Price,
	}
}
