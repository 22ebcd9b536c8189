package service

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/subtrackr/subtrackr/internal/domain/subscription"
	ierr "github.com/subtrackr/subtrackr/internal/errors"
	"github.com/subtrackr/subtrackr/internal/testutil"
	"github.com/subtrackr/subtrackr/internal/types"
)

type ReminderServiceSuite struct {
	testutil.BaseServiceTestSuite
	service    ReminderService
	subService SubscriptionService
}

func TestReminderService(t *testing.T) {
	suite.Run(t, new(ReminderServiceSuite))
}

func (s *ReminderServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	params := ServiceParams{
		Logger:            s.GetLogger(),
		Config:            s.GetConfig(),
		SubRepo:           stores.SubscriptionRepo,
		PaymentRepo:       stores.PaymentRepo,
		CategoryRepo:      stores.CategoryRepo,
		PaymentMethodRepo: stores.PaymentMethodRepo,
	}
	s.service = NewReminderService(params)
	s.subService = NewSubscriptionService(params)
}

func (s *ReminderServiceSuite) createSubscription(name string, first time.Time) *subscription.Subscription {
	sub := &subscription.Subscription{
		Name:             name,
		Price:            decimal.NewFromFloat(12.50),
		Currency:         "usd",
		BillingCycle:     types.BILLING_CYCLE_MONTHLY,
		BillingCadence:   types.BILLING_CADENCE_RECURRING,
		BillingInterval:  1,
		FirstBillingDate: first,
		StartDate:        first.AddDate(0, -1, 0),
	}
	s.NoError(s.subService.Create(s.GetContext(), sub))
	return sub
}

// captureDispatcher records dispatched reminders and can fail on demand.
type captureDispatcher struct {
	dispatched []*Reminder
	failAfter  int
}

func (d *captureDispatcher) Dispatch(_ context.Context, reminder *Reminder) error {
	if d.failAfter > 0 && len(d.dispatched) >= d.failAfter {
		return ierr.NewError("smtp connection refused").Mark(ierr.ErrSystem)
	}
	d.dispatched = append(d.dispatched, reminder)
	return nil
}

func (s *ReminderServiceSuite) TestDueReminders_MatchesOffsets() {
	now := time.Date(2024, time.April, 8, 0, 0, 0, 0, time.UTC)

	// Default offsets are 30, 7, 3 and 1 days before the due date.
	due7 := s.createSubscription("Netflix", time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC))
	due1 := s.createSubscription("Spotify", time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC))
	s.createSubscription("Rent", time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)) // 12 days: no offset

	reminders, err := s.service.DueReminders(s.GetContext(), now)
	s.NoError(err)
	s.Len(reminders, 2)

	byID := lo.KeyBy(reminders, func(r *Reminder) string { return r.SubscriptionID })
	s.Equal(7, byID[due7.ID].DaysUntilDue)
	s.Equal("Netflix", byID[due7.ID].SubscriptionName)
	s.Equal(1, byID[due1.ID].DaysUntilDue)
}

func (s *ReminderServiceSuite) TestDueReminders_TracksPaidCycles() {
	now := time.Date(2024, time.April, 8, 0, 0, 0, 0, time.UTC)
	sub := s.createSubscription("Netflix", time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC))

	reminders, err := s.service.DueReminders(s.GetContext(), now)
	s.NoError(err)
	s.Len(reminders, 1)

	// Paying moves the due date to May 15, 37 days out: no offset match.
	_, err = s.subService.RecordPayment(s.GetContext(), sub.ID, now)
	s.NoError(err)

	reminders, err = s.service.DueReminders(s.GetContext(), now)
	s.NoError(err)
	s.Empty(reminders)
}

func (s *ReminderServiceSuite) TestDueReminders_SkipsEndedAndOneTime() {
	now := time.Date(2024, time.April, 8, 0, 0, 0, 0, time.UTC)

	ended := s.createSubscription("Gym", time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC))
	ended.EndDate = lo.ToPtr(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	s.NoError(s.GetStores().SubscriptionRepo.Update(s.GetContext(), ended))

	oneTime := s.createSubscription("Course", time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC))
	oneTime.BillingCadence = types.BILLING_CADENCE_ONETIME
	s.NoError(s.GetStores().SubscriptionRepo.Update(s.GetContext(), oneTime))

	reminders, err := s.service.DueReminders(s.GetContext(), now)
	s.NoError(err)
	s.Empty(reminders)
}

func (s *ReminderServiceSuite) TestDispatchDueReminders() {
	now := time.Date(2024, time.April, 8, 0, 0, 0, 0, time.UTC)
	s.createSubscription("Netflix", time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC))
	s.createSubscription("Spotify", time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC))

	dispatcher := &captureDispatcher{}
	count, err := s.service.DispatchDueReminders(s.GetContext(), now, dispatcher)
	s.NoError(err)
	s.Equal(2, count)
	s.Len(dispatcher.dispatched, 2)
}

func (s *ReminderServiceSuite) TestDispatchDueReminders_StopsOnFailure() {
	now := time.Date(2024, time.April, 8, 0, 0, 0, 0, time.UTC)
	s.createSubscription("Netflix", time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC))
	s.createSubscription("Spotify", time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC))

	dispatcher := &captureDispatcher{failAfter: 1}
	count, err := s.service.DispatchDueReminders(s.GetContext(), now, dispatcher)
	s.Error(err)
	s.Equal(1, count)
	s.Len(dispatcher.dispatched, 1)
}
