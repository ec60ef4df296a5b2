package service

import (
	"go-appointment-api/core/constants"
	availEntity "go-appointment-api/modules/availability/entity"
)

// ResolveDayWindow intersects the mandatory members' working windows for one
// weekday into the group's bookable wall-clock range.
//
// The reduction is flat across every window row: the group range is the
// latest start and the earliest end of all rows, regardless of which member
// each row belongs to. A member listing split windows (09-12 and 13-18)
// therefore collapses the range, since no single stretch satisfies both
// rows. A member with no window that day contributes nothing, and with no
// rows at all the full day remains bookable. The returned range may be
// empty (start >= end), which means zero slots.
func ResolveDayWindow(windows []availEntity.WorkingWindow) (startClock, endClock string) {
	startClock = constants.DayClockStart
	endClock = constants.DayClockEnd
	for _, w := range windows {
		if w.StartClock > startClock {
			startClock = w.StartClock
		}
		if w.EndClock < endClock {
			endClock = w.EndClock
		}
	}
	return startClock, endClock
}
