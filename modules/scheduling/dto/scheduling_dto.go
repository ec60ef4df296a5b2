package dto

import "time"

// TimeSlot is one bookable interval, half-open [StartTime, EndTime).
type TimeSlot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// SlotsResponse is the answer for one appointment group and one calendar
// date. A rejected day (out of valid range, weekend, daily booking limit
// reached) is reported with IsInvalidDate and zero slots, not with an error.
// ValidEndDate is empty when the booking window is unbounded.
type SlotsResponse struct {
	AppointmentGroupID         string     `json:"appointment_group_id"`
	Date                       string     `json:"date"`
	Duration                   int64      `json:"duration"`
	Slots                      []TimeSlot `json:"slots"`
	TotalSlots                 int        `json:"total_slots"`
	IsInvalidDate              bool       `json:"is_invalid_date"`
	ValidStartDate             string     `json:"valid_start_date"`
	ValidEndDate               string     `json:"valid_end_date"`
	AvailabilityStart          string     `json:"availability_start,omitempty"`
	AvailabilityEnd            string     `json:"availability_end,omitempty"`
	EnableSchedulingOnWeekends bool       `json:"enable_scheduling_on_weekends"`
}
