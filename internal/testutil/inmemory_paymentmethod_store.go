package testutil

import (
	"context"
	"fmt"

	"github.com/subtrackr/subtrackr/internal/domain/paymentmethod"
)

// InMemoryPaymentMethodStore implements paymentmethod.Repository
type InMemoryPaymentMethodStore struct {
	*InMemoryStore[*paymentmethod.PaymentMethod]
}

func NewInMemoryPaymentMethodStore() *InMemoryPaymentMethodStore {
	return &InMemoryPaymentMethodStore{
		InMemoryStore: NewInMemoryStore[*paymentmethod.PaymentMethod](),
	}
}

func (s *InMemoryPaymentMethodStore) Create(ctx context.Context, pm *paymentmethod.PaymentMethod) error {
	if pm == nil {
		return fmt.Errorf("payment method cannot be nil")
	}
	return s.InMemoryStore.Create(ctx, pm.ID, pm)
}

func (s *InMemoryPaymentMethodStore) Get(ctx context.Context, id string) (*paymentmethod.PaymentMethod, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryPaymentMethodStore) Update(ctx context.Context, pm *paymentmethod.PaymentMethod) error {
	if pm == nil {
		return fmt.Errorf("payment method cannot be nil")
	}
	return s.InMemoryStore.Update(ctx, pm.ID, pm)
}

func (s *InMemoryPaymentMethodStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func (s *InMemoryPaymentMethodStore) List(ctx context.Context) ([]*paymentmethod.PaymentMethod, error) {
	return s.InMemoryStore.List(ctx, nil, nil, func(i, j *paymentmethod.PaymentMethod) bool {
		return i.Name < j.Name
	})
}
