package paymentmethod

import (
	"context"

	"github.com/subtrackr/subtrackr/internal/types"
)

// PaymentMethod is how a subscription gets paid, e.g. a card or bank
// account. Purely descriptive; no gateway integration.
type PaymentMethod struct {
	// ID is the unique identifier for the payment method
	ID string `db:"id" json:"id"`

	// Name is the display name, e.g. "Amex Gold"
	Name string `db:"name" json:"name"`

	types.BaseModel
}

type Repository interface {
	Create(ctx context.Context, paymentMethod *PaymentMethod) error
	Get(ctx context.Context, id string) (*PaymentMethod, error)
	Update(ctx context.Context, paymentMethod *PaymentMethod) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*PaymentMethod, error)
}
