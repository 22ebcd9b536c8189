package service

import (
	"context"
	"time"

	"github.com/subtrackr/subtrackr/internal/billing"
	"github.com/subtrackr/subtrackr/internal/domain/payment"
	"github.com/subtrackr/subtrackr/internal/domain/subscription"
	ierr "github.com/subtrackr/subtrackr/internal/errors"
	"github.com/subtrackr/subtrackr/internal/types"
)

// BillingProjection is the read model the dashboard renders for one
// subscription: the engine's outputs plus the paid-count snapshot they were
// computed from. It performs no further calculation.
type BillingProjection struct {
	SubscriptionID   string     `json:"subscription_id"`
	NextBillingDate  *time.Time `json:"next_billing_date,omitempty"`
	Overdue          bool       `json:"overdue"`
	DaysUntilDue     *int       `json:"days_until_due,omitempty"`
	PaidPaymentCount int        `json:"paid_payment_count"`
}

// SubscriptionService owns subscription lifecycle rules: deriving the
// billing cycle day, recording payments, and projecting billing state
// through the date engine.
type SubscriptionService interface {
	Create(ctx context.Context, sub *subscription.Subscription) error
	Get(ctx context.Context, id string) (*subscription.Subscription, error)
	List(ctx context.Context, filter *types.SubscriptionFilter) ([]*subscription.Subscription, error)
	Delete(ctx context.Context, id string) error

	// UpdateFirstBillingDate moves the billing baseline and recalculates
	// the billing cycle day from the new date's day-of-month.
	UpdateFirstBillingDate(ctx context.Context, id string, firstBillingDate time.Time) (*subscription.Subscription, error)

	// RecordPayment appends a PAID payment-history entry for the
	// subscription's current due date, advancing it to the next cycle.
	RecordPayment(ctx context.Context, subscriptionID string, now time.Time) (*payment.Payment, error)

	// GetBillingProjection computes next billing date, overdue status and
	// days until due for a single consistently-captured now.
	GetBillingProjection(ctx context.Context, id string, now time.Time) (*BillingProjection, error)
}

type subscriptionService struct {
	ServiceParams
	engine *billing.Engine
}

func NewSubscriptionService(params ServiceParams) SubscriptionService {
	return &subscriptionService{
		ServiceParams: params,
		engine:        billing.NewEngine(params.Config, params.Logger),
	}
}

func (s *subscriptionService) Create(ctx context.Context, sub *subscription.Subscription) error {
	if err := sub.BillingCycle.Validate(); err != nil {
		return err
	}
	if err := sub.BillingCadence.Validate(); err != nil {
		return err
	}
	if sub.BillingInterval <= 0 {
		return ierr.NewError("billing interval must be a positive integer").
			WithHintf("Billing interval must be greater than zero, got %d", sub.BillingInterval).
			Mark(ierr.ErrValidation)
	}

	if sub.ID == "" {
		sub.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION)
	}
	sub.BaseModel = types.GetDefaultBaseModel(ctx)

	// At creation the cycle day comes from the start date's day-of-month.
	cfg := billing.SetBillingCycleDay(sub.BillingConfig(), sub.StartDate)
	sub.BillingCycleDay = cfg.CycleDay

	if err := s.SubRepo.Create(ctx, sub); err != nil {
		return err
	}

	s.Logger.Infow("created subscription",
		"subscription_id", sub.ID,
		"billing_cycle", sub.BillingCycle,
		"billing_interval", sub.BillingInterval,
	)
	return nil
}

func (s *subscriptionService) Get(ctx context.Context, id string) (*subscription.Subscription, error) {
	return s.SubRepo.Get(ctx, id)
}

func (s *subscriptionService) List(ctx context.Context, filter *types.SubscriptionFilter) ([]*subscription.Subscription, error) {
	return s.SubRepo.List(ctx, filter)
}

func (s *subscriptionService) Delete(ctx context.Context, id string) error {
	return s.SubRepo.Delete(ctx, id)
}

func (s *subscriptionService) UpdateFirstBillingDate(ctx context.Context, id string, firstBillingDate time.Time) (*subscription.Subscription, error) {
	sub, err := s.SubRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sub.FirstBillingDate = firstBillingDate
	sub.UpdatedAt = time.Now().UTC()
	sub.UpdatedBy = types.GetUserID(ctx)

	// Editing the baseline re-anchors the cycle day to the new date.
	cfg := billing.SetBillingCycleDay(sub.BillingConfig(), firstBillingDate)
	sub.BillingCycleDay = cfg.CycleDay

	if err := s.SubRepo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *subscriptionService) RecordPayment(ctx context.Context, subscriptionID string, now time.Time) (*payment.Payment, error) {
	sub, err := s.SubRepo.Get(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	paidCount, err := s.PaymentRepo.CountPaid(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	due := s.engine.NextBillingDate(sub.BillingConfig(), paidCount, now)
	if due == nil {
		return nil, ierr.NewError("subscription has no next billing date").
			WithHint("Ended and one-time subscriptions cannot accept further payments").
			WithReportableDetails(map[string]any{
				"subscription_id": subscriptionID,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	paidAt := now
	pay := &payment.Payment{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		Reference:      types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_PAYMENT),
		SubscriptionID: subscriptionID,
		Amount:         sub.Price,
		Currency:       sub.Currency,
		DueDate:        *due,
		PaidAt:         &paidAt,
		PaymentStatus:  types.PaymentStatusPaid,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}

	if err := s.PaymentRepo.Create(ctx, pay); err != nil {
		return nil, err
	}

	s.Logger.Infow("recorded payment",
		"subscription_id", subscriptionID,
		"payment_id", pay.ID,
		"due_date", pay.DueDate,
	)
	return pay, nil
}

func (s *subscriptionService) GetBillingProjection(ctx context.Context, id string, now time.Time) (*BillingProjection, error) {
	sub, err := s.SubRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	paidCount, err := s.PaymentRepo.CountPaid(ctx, id)
	if err != nil {
		return nil, err
	}

	cfg := sub.BillingConfig()
	projection := &BillingProjection{
		SubscriptionID:   id,
		NextBillingDate:  s.engine.NextBillingDate(cfg, paidCount, now),
		Overdue:          s.engine.IsOverdue(cfg, paidCount, now),
		PaidPaymentCount: paidCount,
	}
	if projection.NextBillingDate != nil {
		days := types.DaysUntil(now, *projection.NextBillingDate)
		projection.DaysUntilDue = &days
	}
	return projection, nil
}
