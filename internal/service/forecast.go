package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/subtrackr/subtrackr/internal/billing"
	ierr "github.com/subtrackr/subtrackr/internal/errors"
	"github.com/subtrackr/subtrackr/internal/types"
)

// MonthlyForecast is the total obligation across all billing cycles landing
// in one calendar month, independent of payment status.
type MonthlyForecast struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`

	// Total across all subscriptions with a determinable forecast
	Total decimal.Decimal `json:"total"`

	// ByCategory breaks the total down per category ID; uncategorized
	// subscriptions sum under the empty key
	ByCategory map[string]decimal.Decimal `json:"by_category"`

	// Skipped lists subscriptions whose forecast hit the iteration cap.
	// They contribute nothing to the totals and must not be read as zero.
	Skipped []string `json:"skipped,omitempty"`
}

// ForecastService aggregates engine forecasts across subscriptions for the
// dashboard's monthly budgeting view.
type ForecastService interface {
	// MonthlyForecast totals the month containing ref. The month window is
	// captured once from ref so concurrent calls near midnight stay
	// internally consistent.
	MonthlyForecast(ctx context.Context, ref time.Time) (*MonthlyForecast, error)
}

type forecastService struct {
	ServiceParams
	engine *billing.Engine
}

func NewForecastService(params ServiceParams) ForecastService {
	return &forecastService{
		ServiceParams: params,
		engine:        billing.NewEngine(params.Config, params.Logger),
	}
}

func (s *forecastService) MonthlyForecast(ctx context.Context, ref time.Time) (*MonthlyForecast, error) {
	startOfMonth, endOfMonth := types.MonthWindow(ref)

	subs, err := s.SubRepo.List(ctx, types.NewNoLimitSubscriptionFilter())
	if err != nil {
		return nil, err
	}

	forecast := &MonthlyForecast{
		PeriodStart: startOfMonth,
		PeriodEnd:   endOfMonth,
		Total:       decimal.Zero,
		ByCategory:  make(map[string]decimal.Decimal),
	}

	for _, sub := range subs {
		amount, err := s.engine.MonthlyForecastAmount(sub.BillingConfig(), startOfMonth, endOfMonth)
		if err != nil {
			if ierr.IsIterationLimit(err) {
				// Undetermined, not zero: report and move on.
				forecast.Skipped = append(forecast.Skipped, sub.ID)
				continue
			}
			return nil, err
		}

		forecast.Total = forecast.Total.Add(amount)
		forecast.ByCategory[sub.CategoryID] = forecast.ByCategory[sub.CategoryID].Add(amount)
	}

	// Drop zero-amount categories so the breakdown only shows months with
	// actual spend.
	forecast.ByCategory = lo.OmitBy(forecast.ByCategory, func(_ string, v decimal.Decimal) bool {
		return v.IsZero()
	})

	s.Logger.Debugw("computed monthly forecast",
		"period_start", startOfMonth,
		"period_end", endOfMonth,
		"total", forecast.Total,
		"subscriptions", len(subs),
		"skipped", len(forecast.Skipped),
	)
	return forecast, nil
}
