package billing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subtrackr/subtrackr/internal/config"
	ierr "github.com/subtrackr/subtrackr/internal/errors"
	"github.com/subtrackr/subtrackr/internal/logger"
	"github.com/subtrackr/subtrackr/internal/types"
)

// Config is the billing configuration subset of a subscription that drives
// date calculation. It is a plain value object: the engine never reads or
// writes stored state mid-calculation, so the next billing date stays a pure
// function of (first billing date, cycle, interval, cycle day, paid count)
// and cannot drift from the payment history.
type Config struct {
	// Cycle is the recurrence unit (daily, weekly, monthly, quarterly, yearly).
	// Unrecognized values follow monthly semantics.
	Cycle types.BillingCycle

	// Cadence distinguishes recurring subscriptions from one-time charges.
	Cadence types.BillingCadence

	// Interval is the positive multiplier applied to the cycle unit,
	// e.g. 2 with a monthly cycle bills every 2 months. The caller
	// validates positivity before invoking the engine.
	Interval int

	// CycleDay is the preferred day-of-month for month-anchored cycles,
	// nil for daily/weekly/yearly. Derived from the first billing date's
	// day-of-month and recalculated whenever that date is edited.
	CycleDay *int

	// FirstBillingDate is the baseline from which all cycles are counted.
	// It may be before or after StartDate; no ordering is enforced.
	FirstBillingDate time.Time

	// StartDate is informational: it only decides whether the subscription
	// was active during a given month, never serves as a billing baseline.
	StartDate time.Time

	// EndDate, when set and in the past, marks the subscription as ended:
	// no next billing date, never overdue.
	EndDate *time.Time

	// Price is the amount charged per billing cycle.
	Price decimal.Decimal
}

// Ended reports whether the subscription ended strictly before now.
func (c Config) Ended(now time.Time) bool {
	return c.EndDate != nil && c.EndDate.Before(now)
}

// Engine computes billing dates, overdue status and monthly forecast
// amounts. It is stateless apart from its iteration caps and logger, so any
// number of callers may share one instance concurrently; each call captures
// its own now/month-window pair.
type Engine struct {
	caps   config.IterationCaps
	logger *logger.Logger
}

func NewEngine(cfg *config.Configuration, log *logger.Logger) *Engine {
	return &Engine{
		caps:   cfg.Billing.IterationCaps,
		logger: log,
	}
}

// NextBillingDate returns the due date of the cycle following the last paid
// payment, or nil when no next bill exists (ended subscription or one-time
// charge). The date is paidPaymentCount complete cycles after the first
// billing date.
func (e *Engine) NextBillingDate(cfg Config, paidPaymentCount int, now time.Time) *time.Time {
	if cfg.Ended(now) {
		return nil
	}
	if cfg.Cadence == types.BILLING_CADENCE_ONETIME {
		return nil
	}

	next := e.dateForCycle(cfg, paidPaymentCount)
	return &next
}

// IsOverdue reports whether the next billing date has passed. Ended
// subscriptions and one-time charges are never overdue.
func (e *Engine) IsOverdue(cfg Config, paidPaymentCount int, now time.Time) bool {
	next := e.NextBillingDate(cfg, paidPaymentCount, now)
	if next == nil {
		return false
	}
	return next.Before(now)
}

// MonthlyForecastAmount totals every billing cycle due within
// [startOfMonth, endOfMonth], regardless of payment status. This is a
// budgeting figure, not a remaining-amount figure.
//
// The walk from the first billing date is bounded by the per-cycle iteration
// cap; exceeding it returns ErrIterationLimit and the caller must treat the
// amount as undetermined, never as zero.
func (e *Engine) MonthlyForecastAmount(cfg Config, startOfMonth, endOfMonth time.Time) (decimal.Decimal, error) {
	// Not active at any point in the month.
	if cfg.StartDate.After(endOfMonth) {
		return decimal.Zero, nil
	}
	if cfg.EndDate != nil && cfg.EndDate.Before(startOfMonth) {
		return decimal.Zero, nil
	}

	// One-time charges have a single due date: the first billing date.
	if cfg.Cadence == types.BILLING_CADENCE_ONETIME {
		if withinWindow(cfg.FirstBillingDate, startOfMonth, endOfMonth) {
			return cfg.Price, nil
		}
		return decimal.Zero, nil
	}

	if cfg.FirstBillingDate.After(endOfMonth) {
		return decimal.Zero, nil
	}

	limit := e.caps.ForCycle(cfg.Cycle)

	// Walk forward in cycle-sized steps until a due date lands in the
	// window. Recomputing each step from the first billing date keeps the
	// preferred day-of-month anchored instead of drifting after a clamp.
	cycle := 0
	date := cfg.FirstBillingDate
	for date.Before(startOfMonth) {
		cycle++
		if cycle > limit {
			return decimal.Zero, e.iterationLimitErr(cfg, limit, "finding first billing date in month")
		}
		date = e.dateForCycle(cfg, cycle)
	}
	if date.After(endOfMonth) {
		return decimal.Zero, nil
	}

	effectiveEnd := endOfMonth
	if cfg.EndDate != nil && cfg.EndDate.Before(endOfMonth) {
		effectiveEnd = *cfg.EndDate
	}

	count := 0
	for !date.After(effectiveEnd) {
		count++
		if count > limit {
			return decimal.Zero, e.iterationLimitErr(cfg, limit, "counting billing dates in month")
		}
		cycle++
		date = e.dateForCycle(cfg, cycle)
	}

	return cfg.Price.Mul(decimal.NewFromInt(int64(count))), nil
}

// SetBillingCycleDay derives the preferred day-of-month from baseline for
// month-anchored cycles and clears it for every other cycle. Baseline is the
// start date at creation and the first billing date on recalculation after
// an edit.
func SetBillingCycleDay(cfg Config, baseline time.Time) Config {
	if cfg.Cycle.IsMonthAnchored() {
		day := baseline.Day()
		cfg.CycleDay = &day
		return cfg
	}
	cfg.CycleDay = nil
	return cfg
}

// dateForCycle returns the due date n complete cycles after the first
// billing date.
func (e *Engine) dateForCycle(cfg Config, n int) time.Time {
	switch cfg.Cycle {
	case types.BILLING_CYCLE_DAILY:
		return cfg.FirstBillingDate.AddDate(0, 0, cfg.Interval*n)
	case types.BILLING_CYCLE_WEEKLY:
		return cfg.FirstBillingDate.AddDate(0, 0, 7*cfg.Interval*n)
	case types.BILLING_CYCLE_YEARLY:
		// Clamps Feb 29 anchors to Feb 28 in non-leap target years.
		return types.AddClampedDate(cfg.FirstBillingDate, cfg.Interval*n, 0, 0)
	default:
		// Monthly, quarterly, and the monthly fallback for unknown cycles.
		months := cfg.Cycle.MonthMultiplier() * cfg.Interval * n
		if cfg.CycleDay == nil {
			return cfg.FirstBillingDate.AddDate(0, months, 0)
		}
		year, month := addMonths(cfg.FirstBillingDate, months)
		return types.ClampDayToMonth(year, month, *cfg.CycleDay, cfg.FirstBillingDate)
	}
}

func (e *Engine) iterationLimitErr(cfg Config, limit int, op string) error {
	e.logger.Warnw("billing date iteration cap exceeded",
		"op", op,
		"cap", limit,
		"billing_cycle", cfg.Cycle,
		"billing_interval", cfg.Interval,
		"first_billing_date", cfg.FirstBillingDate,
	)
	return ierr.NewError("billing date iteration cap exceeded").
		WithHintf("Could not determine a billing date within %d cycles", limit).
		WithReportableDetails(map[string]any{
			"billing_cycle":    cfg.Cycle,
			"billing_interval": cfg.Interval,
		}).
		Mark(ierr.ErrIterationLimit)
}

// addMonths returns the year/month that is months after t's year/month,
// normalizing overflow past December in either direction.
func addMonths(t time.Time, months int) (int, time.Month) {
	year := t.Year()
	month := time.Month(int(t.Month()) + months)
	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}
	return year, month
}

func withinWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
