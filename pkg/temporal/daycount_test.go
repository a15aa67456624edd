package temporal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestYearFraction_Act365F(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2025, time.January, 1)

	// 2024 is a leap year: 366 actual days over a 365 denominator.
	got := DayCountAct365F.YearFraction(start, end)
	want := decimal.NewFromInt(366).Div(decimal.NewFromInt(365))
	if !got.Equal(want) {
		t.Errorf("ACT/365F = %s, want %s", got, want)
	}
}

func TestYearFraction_Act360(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.July, 1)

	// 182 actual days over 360.
	got := DayCountAct360.YearFraction(start, end)
	want := decimal.NewFromInt(182).Div(decimal.NewFromInt(360))
	if !got.Equal(want) {
		t.Errorf("ACT/360 = %s, want %s", got, want)
	}
}

func TestYearFraction_30360(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		wantDays   int64
	}{
		{"full year", date(2024, time.January, 15), date(2025, time.January, 15), 360},
		{"one month", date(2024, time.January, 15), date(2024, time.February, 15), 30},
		{"start day 31 counts as 30", date(2024, time.January, 31), date(2024, time.February, 28), 28},
		{"both days 31 count as 30", date(2024, time.January, 31), date(2024, time.March, 31), 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DayCount30360.YearFraction(tt.start, tt.end)
			want := decimal.NewFromInt(tt.wantDays).Div(decimal.NewFromInt(360))
			if !got.Equal(want) {
				t.Errorf("30/360 = %s, want %s", got, want)
			}
		})
	}
}

func TestYearFraction_NegativeSpan(t *testing.T) {
	start := date(2024, time.June, 1)
	end := date(2024, time.May, 1)
	if !DayCountAct365F.YearFraction(start, end).IsNegative() {
		t.Error("reversed dates should produce a negative fraction")
	}
}

func TestNewDayCount(t *testing.T) {
	for _, s := range []string{"ACT/365F", "ACT/360", "30/360"} {
		if _, err := NewDayCount(s); err != nil {
			t.Errorf("NewDayCount(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := NewDayCount("ACT/ACT"); err == nil {
		t.Error("unsupported convention expected error, got nil")
	}
}
