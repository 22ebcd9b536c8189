package testutil

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/subtrackr/subtrackr/internal/domain/payment"
	"github.com/subtrackr/subtrackr/internal/types"
)

// InMemoryPaymentStore implements payment.Repository
type InMemoryPaymentStore struct {
	*InMemoryStore[*payment.Payment]
}

func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return &InMemoryPaymentStore{
		InMemoryStore: NewInMemoryStore[*payment.Payment](),
	}
}

// paymentFilterFn implements filtering logic for payments
func paymentFilterFn(ctx context.Context, p *payment.Payment, filter interface{}) bool {
	if p == nil {
		return false
	}

	f, ok := filter.(*types.PaymentFilter)
	if !ok {
		return true // No filter applied
	}

	if p.Status == types.StatusDeleted {
		return false
	}

	// Filter by subscription
	if f.SubscriptionID != "" && p.SubscriptionID != f.SubscriptionID {
		return false
	}

	// Filter by payment status
	if len(f.PaymentStatus) > 0 && !lo.Contains(f.PaymentStatus, p.PaymentStatus) {
		return false
	}

	return true
}

// paymentSortFn implements sorting logic for payments
func paymentSortFn(i, j *payment.Payment) bool {
	if i == nil || j == nil {
		return false
	}
	return i.DueDate.After(j.DueDate)
}

func (s *InMemoryPaymentStore) Create(ctx context.Context, p *payment.Payment) error {
	if p == nil {
		return fmt.Errorf("payment cannot be nil")
	}
	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryPaymentStore) Get(ctx context.Context, id string) (*payment.Payment, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryPaymentStore) List(ctx context.Context, filter *types.PaymentFilter) ([]*payment.Payment, error) {
	return s.InMemoryStore.List(ctx, filter, paymentFilterFn, paymentSortFn)
}

func (s *InMemoryPaymentStore) Count(ctx context.Context, filter *types.PaymentFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, paymentFilterFn)
}

func (s *InMemoryPaymentStore) CountPaid(ctx context.Context, subscriptionID string) (int, error) {
	filter := types.NewNoLimitPaymentFilter()
	filter.SubscriptionID = subscriptionID
	filter.PaymentStatus = []types.PaymentStatus{types.PaymentStatusPaid}
	return s.Count(ctx, filter)
}

func (s *InMemoryPaymentStore) Update(ctx context.Context, p *payment.Payment) error {
	if p == nil {
		return fmt.Errorf("payment cannot be nil")
	}
	return s.InMemoryStore.Update(ctx, p.ID, p)
}

func (s *InMemoryPaymentStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
