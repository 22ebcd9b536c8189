package types

import (
	"testing"
	"time"
)

func TestAddClampedDate_Months(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{
			name:   "simple month",
			start:  time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "31st to shorter month",
			start:  time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), // leap year
		},
		{
			name:   "31st to shorter month non leap year",
			start:  time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "cross year with month end",
			start:  time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
			months: 2,
			want:   time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), // 2025 not leap year
		},
		{
			name:   "backwards past january",
			start:  time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC),
			months: -3,
			want:   time.Date(2023, time.November, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddClampedDate(tt.start, 0, tt.months, 0)
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddClampedDate_Years(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		years int
		want  time.Time
	}{
		{
			name:  "simple year",
			start: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			years: 1,
			want:  time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap year to non-leap year Feb 29",
			start: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			years: 1,
			want:  time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap year to leap year Feb 29",
			start: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			years: 4,
			want:  time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddClampedDate(tt.start, tt.years, 0, 0)
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddClampedDate_DaysRollOver(t *testing.T) {
	got := AddClampedDate(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), 0, 0, 5)
	want := time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLastDayOfMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		if got := LastDayOfMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("LastDayOfMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestClampDayToMonth(t *testing.T) {
	ref := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	got := ClampDayToMonth(2024, time.February, 31, ref)
	want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// The preferred day is not sticky: a long month gets it back.
	got = ClampDayToMonth(2024, time.March, 31, ref)
	want = time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMonthWindow(t *testing.T) {
	ref := time.Date(2024, time.February, 14, 15, 30, 0, 0, time.UTC)
	start, end := MonthWindow(ref)

	wantStart := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)

	if !start.Equal(wantStart) {
		t.Errorf("start: got %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end: got %v, want %v", end, wantEnd)
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		target time.Time
		want   int
	}{
		{
			name:   "same day later hour counts as zero",
			now:    time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC),
			target: time.Date(2024, time.March, 10, 23, 0, 0, 0, time.UTC),
			want:   0,
		},
		{
			name:   "seven days out",
			now:    time.Date(2024, time.March, 10, 23, 0, 0, 0, time.UTC),
			target: time.Date(2024, time.March, 17, 1, 0, 0, 0, time.UTC),
			want:   7,
		},
		{
			name:   "past date is negative",
			now:    time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			target: time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC),
			want:   -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.now, tt.target); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
