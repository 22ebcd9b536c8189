package types

import (
	"github.com/samber/lo"
	ierr "github.com/subtrackr/subtrackr/internal/errors"
)

// PaymentStatus is the lifecycle state of a single payment-history record.
// Only PAID records drive billing-date computation: the count of paid
// payments decides which cycle a subscription is on.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
	PaymentStatusSkipped PaymentStatus = "SKIPPED"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) Validate() error {
	allowedValues := []PaymentStatus{
		PaymentStatusPending,
		PaymentStatusPaid,
		PaymentStatusFailed,
		PaymentStatusSkipped,
	}

	if !lo.Contains(allowedValues, s) {
		return ierr.NewError("invalid payment status").
			WithHint("Invalid payment status").
			WithReportableDetails(map[string]any{
				"allowed_values": allowedValues,
				"provided_value": s,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
