package service

import (
	"fmt"
	"time"
)

// Clock values are canonical "HH:MM:SS" strings; on that form lexical order
// equals chronological order, and "24:00:00" is end of day.

func clockParts(clock string) (h, m, s int, err error) {
	if _, err = fmt.Sscanf(clock, "%02d:%02d:%02d", &h, &m, &s); err != nil {
		return 0, 0, 0, fmt.Errorf("clock %q is not HH:MM:SS: %w", clock, err)
	}
	if h == 24 && m == 0 && s == 0 {
		return 24, 0, 0, nil
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, 0, 0, fmt.Errorf("clock %q out of range", clock)
	}
	return h, m, s, nil
}

// anchorClock pins a wall-clock value to the given calendar date in loc and
// returns the resulting UTC instant. "24:00:00" lands on the next day's
// midnight via time.Date normalization.
func anchorClock(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	h, m, s, err := clockParts(clock)
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := date.Date()
	return time.Date(year, month, day, h, m, s, 0, loc).UTC(), nil
}

// midnight truncates an instant to its calendar date in loc.
func midnight(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
