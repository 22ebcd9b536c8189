package payment

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subtrackr/subtrackr/internal/types"
)

// Payment is a single entry in a subscription's payment history. The count
// of PAID entries is the sole dynamic driver of which billing cycle the
// subscription is on.
type Payment struct {
	// ID is the unique identifier for the payment
	ID string `db:"id" json:"id"`

	// Reference is a short human-readable reference shown on the dashboard
	Reference string `db:"reference" json:"reference"`

	// SubscriptionID identifies the subscription this payment belongs to
	SubscriptionID string `db:"subscription_id" json:"subscription_id"`

	// Amount is the payment value in the subscription's currency
	Amount decimal.Decimal `db:"amount" json:"amount"`

	// Currency is a three-letter ISO code in lowercase
	Currency string `db:"currency" json:"currency"`

	// DueDate is the billing date this payment settles
	DueDate time.Time `db:"due_date" json:"due_date"`

	// PaidAt is when the payment was completed, nil while pending
	PaidAt *time.Time `db:"paid_at" json:"paid_at"`

	// PaymentStatus is the lifecycle state of the payment
	PaymentStatus types.PaymentStatus `db:"payment_status" json:"payment_status"`

	types.BaseModel
}

// IsPaid reports whether the payment counts toward completed billing cycles.
func (p *Payment) IsPaid() bool {
	return p.PaymentStatus == types.PaymentStatusPaid
}
