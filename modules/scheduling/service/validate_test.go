package service

import (
	"testing"
	"time"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestValidateDateBoundedWindow(t *testing.T) {
	today := day(t, "2026-08-27")

	tests := []struct {
		name       string
		date       string
		noticeDays int
		windowDays int
		wantValid  bool
	}{
		{"before notice period", "2026-08-28", 2, 5, false},
		{"first valid day", "2026-08-29", 2, 5, true},
		{"inside window", "2026-09-01", 2, 5, true},
		{"last valid day", "2026-09-03", 2, 5, true},
		{"past window", "2026-09-04", 2, 5, false},
		{"today with no notice", "2026-08-27", 0, 7, true},
		{"yesterday", "2026-08-26", 0, 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateDate(day(t, tt.date), today, tt.noticeDays, tt.windowDays)
			if v.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", v.Valid, tt.wantValid)
			}
			if v.Unbounded {
				t.Error("window should be bounded")
			}
		})
	}
}

func TestValidateDateBoundariesAlwaysReported(t *testing.T) {
	today := day(t, "2026-08-27")

	v := ValidateDate(day(t, "2026-08-01"), today, 3, 10)
	if v.Valid {
		t.Error("date in the past should be invalid")
	}
	if want := day(t, "2026-08-30"); !v.ValidStart.Equal(want) {
		t.Errorf("ValidStart = %v, want %v", v.ValidStart, want)
	}
	if want := day(t, "2026-09-09"); !v.ValidEnd.Equal(want) {
		t.Errorf("ValidEnd = %v, want %v", v.ValidEnd, want)
	}
}

func TestValidateDateUnboundedWindow(t *testing.T) {
	today := day(t, "2026-08-27")

	v := ValidateDate(day(t, "2030-01-01"), today, 1, 0)
	if !v.Valid {
		t.Error("far future date should be valid with an unbounded window")
	}
	if !v.Unbounded {
		t.Error("windowDays = 0 should be unbounded")
	}
	if !v.ValidEnd.IsZero() {
		t.Errorf("ValidEnd should stay zero, got %v", v.ValidEnd)
	}

	if v := ValidateDate(day(t, "2026-08-27"), today, 1, 0); v.Valid {
		t.Error("date before notice should be invalid even unbounded")
	}
}

func TestIsWeekend(t *testing.T) {
	if !IsWeekend(day(t, "2026-09-05")) {
		t.Error("2026-09-05 is a Saturday")
	}
	if !IsWeekend(day(t, "2026-09-06")) {
		t.Error("2026-09-06 is a Sunday")
	}
	if IsWeekend(day(t, "2026-09-07")) {
		t.Error("2026-09-07 is a Monday")
	}
}
