package service

import "time"

// DateValidation is the bookable date range derived from a group's notice
// and availability-window settings. The boundaries are reported even when
// the requested date falls outside them.
type DateValidation struct {
	Valid      bool
	ValidStart time.Time
	ValidEnd   time.Time
	Unbounded  bool
}

// ValidateDate checks a requested calendar date against the bookable range.
// Both date and today must be midnights in the service reference timezone.
// The range starts noticeDays after today; windowDays > 0 closes it
// windowDays after the start (inclusive), otherwise it stays open-ended.
func ValidateDate(date, today time.Time, noticeDays, windowDays int) DateValidation {
	v := DateValidation{
		ValidStart: today.AddDate(0, 0, noticeDays),
		Unbounded:  windowDays <= 0,
	}
	if !v.Unbounded {
		v.ValidEnd = v.ValidStart.AddDate(0, 0, windowDays)
	}

	if date.Before(v.ValidStart) {
		return v
	}
	if !v.Unbounded && date.After(v.ValidEnd) {
		return v
	}
	v.Valid = true
	return v
}

func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
