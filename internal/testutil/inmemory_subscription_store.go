package testutil

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/subtrackr/subtrackr/internal/domain/subscription"
	"github.com/subtrackr/subtrackr/internal/types"
)

// InMemorySubscriptionStore implements subscription.Repository
type InMemorySubscriptionStore struct {
	*InMemoryStore[*subscription.Subscription]
}

func NewInMemorySubscriptionStore() *InMemorySubscriptionStore {
	return &InMemorySubscriptionStore{
		InMemoryStore: NewInMemoryStore[*subscription.Subscription](),
	}
}

// subscriptionFilterFn implements filtering logic for subscriptions
func subscriptionFilterFn(ctx context.Context, sub *subscription.Subscription, filter interface{}) bool {
	if sub == nil {
		return false
	}

	f, ok := filter.(*types.SubscriptionFilter)
	if !ok {
		return true // No filter applied
	}

	if sub.Status == types.StatusDeleted {
		return false
	}

	// Filter by category
	if f.CategoryID != "" && sub.CategoryID != f.CategoryID {
		return false
	}

	// Filter by payment method
	if f.PaymentMethodID != "" && sub.PaymentMethodID != f.PaymentMethodID {
		return false
	}

	// Filter by billing cycle
	if len(f.BillingCycle) > 0 && !lo.Contains(f.BillingCycle, sub.BillingCycle) {
		return false
	}

	// Filter by billing cadence
	if len(f.BillingCadence) > 0 && !lo.Contains(f.BillingCadence, sub.BillingCadence) {
		return false
	}

	// Filter by active at
	if f.ActiveAt != nil {
		if sub.StartDate.After(*f.ActiveAt) {
			return false
		}
		if sub.EndDate != nil && sub.EndDate.Before(*f.ActiveAt) {
			return false
		}
	}

	return true
}

// subscriptionSortFn implements sorting logic for subscriptions
func subscriptionSortFn(i, j *subscription.Subscription) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemorySubscriptionStore) Create(ctx context.Context, sub *subscription.Subscription) error {
	if sub == nil {
		return fmt.Errorf("subscription cannot be nil")
	}
	return s.InMemoryStore.Create(ctx, sub.ID, sub)
}

func (s *InMemorySubscriptionStore) Get(ctx context.Context, id string) (*subscription.Subscription, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemorySubscriptionStore) List(ctx context.Context, filter *types.SubscriptionFilter) ([]*subscription.Subscription, error) {
	return s.InMemoryStore.List(ctx, filter, subscriptionFilterFn, subscriptionSortFn)
}

func (s *InMemorySubscriptionStore) Count(ctx context.Context, filter *types.SubscriptionFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, subscriptionFilterFn)
}

func (s *InMemorySubscriptionStore) Update(ctx context.Context, sub *subscription.Subscription) error {
	if sub == nil {
		return fmt.Errorf("subscription cannot be nil")
	}
	return s.InMemoryStore.Update(ctx, sub.ID, sub)
}

func (s *InMemorySubscriptionStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
