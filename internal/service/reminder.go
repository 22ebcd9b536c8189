package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/subtrackr/subtrackr/internal/billing"
	"github.com/subtrackr/subtrackr/internal/types"
)

// Reminder is a notification that a bill is coming due. It carries only the
// engine's outputs; rendering and transport happen elsewhere.
type Reminder struct {
	SubscriptionID   string    `json:"subscription_id"`
	SubscriptionName string    `json:"subscription_name"`
	DueDate          time.Time `json:"due_date"`
	DaysUntilDue     int       `json:"days_until_due"`
}

// NotificationDispatcher delivers reminders. Email/push transport lives
// behind this boundary and is not part of the billing core.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, reminder *Reminder) error
}

// ReminderService decides which subscriptions are due for a reminder today
// by matching days-until-due against the configured offset list.
type ReminderService interface {
	// DueReminders returns the reminders that should fire for the given
	// now, one per subscription whose days-until-due matches an offset.
	DueReminders(ctx context.Context, now time.Time) ([]*Reminder, error)

	// DispatchDueReminders computes due reminders and hands each to the
	// dispatcher. A dispatch failure stops the run so the scheduler can
	// retry; already-sent reminders are the dispatcher's concern.
	DispatchDueReminders(ctx context.Context, now time.Time, dispatcher NotificationDispatcher) (int, error)
}

type reminderService struct {
	ServiceParams
	engine *billing.Engine
}

func NewReminderService(params ServiceParams) ReminderService {
	return &reminderService{
		ServiceParams: params,
		engine:        billing.NewEngine(params.Config, params.Logger),
	}
}

func (s *reminderService) DueReminders(ctx context.Context, now time.Time) ([]*Reminder, error) {
	filter := types.NewNoLimitSubscriptionFilter()
	filter.ActiveAt = &now

	subs, err := s.SubRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	offsets := s.Config.Reminders.OffsetsDays

	var reminders []*Reminder
	for _, sub := range subs {
		paidCount, err := s.PaymentRepo.CountPaid(ctx, sub.ID)
		if err != nil {
			return nil, err
		}

		next := s.engine.NextBillingDate(sub.BillingConfig(), paidCount, now)
		if next == nil {
			// Undetermined means do not act: no reminder.
			continue
		}

		days := types.DaysUntil(now, *next)
		if !lo.Contains(offsets, days) {
			continue
		}

		reminders = append(reminders, &Reminder{
			SubscriptionID:   sub.ID,
			SubscriptionName: sub.Name,
			DueDate:          *next,
			DaysUntilDue:     days,
		})
	}

	return reminders, nil
}

func (s *reminderService) DispatchDueReminders(ctx context.Context, now time.Time, dispatcher NotificationDispatcher) (int, error) {
	reminders, err := s.DueReminders(ctx, now)
	if err != nil {
		return 0, err
	}

	for i, reminder := range reminders {
		if err := dispatcher.Dispatch(ctx, reminder); err != nil {
			return i, err
		}
		s.Logger.Infow("dispatched reminder",
			"subscription_id", reminder.SubscriptionID,
			"due_date", reminder.DueDate,
			"days_until_due", reminder.DaysUntilDue,
		)
	}

	return len(reminders), nil
}
