package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/subtrackr/subtrackr/internal/domain/subscription"
	"github.com/subtrackr/subtrackr/internal/testutil"
	"github.com/subtrackr/subtrackr/internal/types"
)

type ForecastServiceSuite struct {
	testutil.BaseServiceTestSuite
	service    ForecastService
	subService SubscriptionService
}

func TestForecastService(t *testing.T) {
	suite.Run(t, new(ForecastServiceSuite))
}

func (s *ForecastServiceSuite) SetupTest() {
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
	s.service = NewForecastService(params)
	s.subService = NewSubscriptionService(params)
}

func (s *ForecastServiceSuite) createSubscription(name, categoryID string, price float64, cycle types.BillingCycle, first time.Time) *subscription.Subscription {
	sub := &subscription.Subscription{
		Name:             name,
		Price:            decimal.NewFromFloat(price),
		Currency:         "usd",
		BillingCycle:     cycle,
		BillingCadence:   types.BILLING_CADENCE_RECURRING,
		BillingInterval:  1,
		FirstBillingDate: first,
		StartDate:        first,
		CategoryID:       categoryID,
	}
	s.NoError(s.subService.Create(s.GetContext(), sub))
	return sub
}

func (s *ForecastServiceSuite) TestMonthlyForecast() {
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	s.createSubscription("Netflix", "cat_streaming", 15.99, types.BILLING_CYCLE_MONTHLY, jan15)
	s.createSubscription("Spotify", "cat_streaming", 9.99, types.BILLING_CYCLE_MONTHLY, jan15)
	s.createSubscription("Rent", "cat_housing", 1200, types.BILLING_CYCLE_MONTHLY, jan15)

	forecast, err := s.service.MonthlyForecast(s.GetContext(),
		time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC))
	s.NoError(err)
	s.True(forecast.Total.Equal(decimal.NewFromFloat(1225.98)))
	s.True(forecast.ByCategory["cat_streaming"].Equal(decimal.NewFromFloat(25.98)))
	s.True(forecast.ByCategory["cat_housing"].Equal(decimal.NewFromInt(1200)))
	s.Empty(forecast.Skipped)
}

func (s *ForecastServiceSuite) TestMonthlyForecast_IncludesPaidCycles() {
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	sub := s.createSubscription("Netflix", "cat_streaming", 15.99, types.BILLING_CYCLE_MONTHLY, jan15)

	// Pay through April: the forecast is unchanged because it counts due
	// dates, not unpaid balances.
	now := time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		_, err := s.subService.RecordPayment(s.GetContext(), sub.ID, now)
		s.NoError(err)
	}

	forecast, err := s.service.MonthlyForecast(s.GetContext(), now)
	s.NoError(err)
	s.True(forecast.Total.Equal(decimal.NewFromFloat(15.99)))
}

func (s *ForecastServiceSuite) TestMonthlyForecast_WeeklyMultipleOccurrences() {
	// Apr 1, 8, 15, 22, 29 all land in April 2024.
	apr1 := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	s.createSubscription("Cleaning", "cat_home", 40, types.BILLING_CYCLE_WEEKLY, apr1)

	forecast, err := s.service.MonthlyForecast(s.GetContext(),
		time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC))
	s.NoError(err)
	s.True(forecast.Total.Equal(decimal.NewFromInt(200)))
}

func (s *ForecastServiceSuite) TestMonthlyForecast_ExcludesInactive() {
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	ended := s.createSubscription("Gym", "cat_fitness", 30, types.BILLING_CYCLE_MONTHLY, jan15)
	ended.EndDate = lo.ToPtr(time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC))
	s.NoError(s.GetStores().SubscriptionRepo.Update(s.GetContext(), ended))

	s.createSubscription("Future", "cat_fitness", 50, types.BILLING_CYCLE_MONTHLY,
		time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC))

	forecast, err := s.service.MonthlyForecast(s.GetContext(),
		time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC))
	s.NoError(err)
	s.True(forecast.Total.IsZero())
	s.Empty(forecast.ByCategory)
}

func (s *ForecastServiceSuite) TestMonthlyForecast_UncategorizedUnderEmptyKey() {
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	s.createSubscription("Misc", "", 5, types.BILLING_CYCLE_MONTHLY, jan15)

	forecast, err := s.service.MonthlyForecast(s.GetContext(),
		time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC))
	s.NoError(err)
	s.True(forecast.ByCategory[""].Equal(decimal.NewFromInt(5)))
}

func (s *ForecastServiceSuite) TestMonthlyForecast_SkipsUndetermined() {
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	s.createSubscription("Netflix", "cat_streaming", 15.99, types.BILLING_CYCLE_MONTHLY, jan15)

	// A zero interval never advances and exhausts the iteration cap. The
	// subscription is reported as skipped, not counted as zero.
	broken := &subscription.Subscription{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		Name:             "Broken",
		Price:            decimal.NewFromInt(99),
		Currency:         "usd",
		BillingCycle:     types.BILLING_CYCLE_MONTHLY,
		BillingCadence:   types.BILLING_CADENCE_RECURRING,
		BillingInterval:  0,
		FirstBillingDate: jan15,
		StartDate:        jan15,
		BaseModel:        types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().SubscriptionRepo.Create(s.GetContext(), broken))

	forecast, err := s.service.MonthlyForecast(s.GetContext(),
		time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC))
	s.NoError(err)
	s.True(forecast.Total.Equal(decimal.NewFromFloat(15.99)))
	s.Equal([]string{broken.ID}, forecast.Skipped)
}
