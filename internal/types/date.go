package types

import (
	"time"
)

// AddClampedDate adds the given years, months and days to t, clamping the
// resulting day to the last valid day of the target month. This is the
// building block for billing-date arithmetic: adding one month to Jan 31
// lands on Feb 28 (or 29 in a leap year), not Mar 2/3 the way time.AddDate
// would normalize it.
func AddClampedDate(t time.Time, years, months, days int) time.Time {
	y, m, d := t.Date()
	h, min, sec := t.Clock()

	newY := y + years
	newM := time.Month(int(m) + months)

	// Normalize month overflow in either direction, e.g. adding 2 months
	// to November lands on January of the next year.
	for newM > 12 {
		newM -= 12
		newY++
	}
	for newM < 1 {
		newM += 12
		newY--
	}

	newD := d + days
	if days == 0 {
		// Only clamp when the day itself did not move; day addition is
		// expected to roll over month boundaries naturally.
		if last := LastDayOfMonth(newY, newM); newD > last {
			newD = last
		}
		return time.Date(newY, newM, newD, h, min, sec, t.Nanosecond(), t.Location())
	}

	return time.Date(newY, newM, newD, h, min, sec, t.Nanosecond(), t.Location())
}

// LastDayOfMonth returns the number of days in the given month.
func LastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDayToMonth places day within year/month, falling back to the last
// day of the month when the month is too short. The preferred day is never
// lost: a day-31 schedule clamps to Feb 28/29 and reverts to 31 in March.
func ClampDayToMonth(year int, month time.Month, day int, ref time.Time) time.Time {
	if last := LastDayOfMonth(year, month); day > last {
		day = last
	}
	h, min, sec := ref.Clock()
	return time.Date(year, month, day, h, min, sec, ref.Nanosecond(), ref.Location())
}

// MonthWindow returns the inclusive [start, end] boundaries of the calendar
// month containing ref. Callers capture the pair once per invocation so a
// computation started at 23:59 does not straddle two different months.
func MonthWindow(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// DaysUntil returns the number of whole days from now until target,
// comparing calendar dates rather than instants so a bill due later today
// still counts as zero days away.
func DaysUntil(now, target time.Time) int {
	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	targetDate := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	return int(targetDate.Sub(nowDate).Hours() / 24)
}
