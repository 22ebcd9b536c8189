package payment

import (
	"context"

	"github.com/subtrackr/subtrackr/internal/types"
)

type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	Get(ctx context.Context, id string) (*Payment, error)
	Update(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.PaymentFilter) ([]*Payment, error)
	Count(ctx context.Context, filter *types.PaymentFilter) (int, error)

	// CountPaid returns the number of PAID payments recorded for the
	// subscription. This is the paid-payment count the billing-date
	// engine consumes.
	CountPaid(ctx context.Context, subscriptionID string) (int, error)
}
