package dto

type MemberInput struct {
	Email       string `json:"email"`
	IsMandatory bool   `json:"is_mandatory"`
}

type CreateGroupRequest struct {
	Name                   string        `json:"name"`
	DurationSeconds        int64         `json:"duration_seconds"`
	MinimumBufferSeconds   int64         `json:"minimum_buffer_seconds"`
	MinimumNoticeDays      int           `json:"minimum_notice_days"`
	AvailabilityWindowDays int           `json:"availability_window_days"`
	BookingFrequencyLimit  int           `json:"booking_frequency_limit"`
	SchedulingOnWeekends   bool          `json:"scheduling_on_weekends"`
	Members                []MemberInput `json:"members"`
}
