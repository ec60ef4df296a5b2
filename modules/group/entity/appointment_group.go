package entity

import (
	coreEntity "go-appointment-api/core/entity"

	"github.com/google/uuid"
)

// AppointmentGroup is the bookable configuration guests schedule against.
// DurationSeconds and MinimumBufferSeconds are stored in seconds;
// MinimumBufferSeconds = 0 means no buffer policy.
// BookingFrequencyLimit < 0 means unlimited bookings per day.
type AppointmentGroup struct {
	ID                     uuid.UUID `db:"id" json:"id"`
	Name                   string    `db:"name" json:"name"`
	Route                  string    `db:"route" json:"route"`
	DurationSeconds        int64     `db:"duration_seconds" json:"duration_seconds"`
	MinimumBufferSeconds   int64     `db:"minimum_buffer_seconds" json:"minimum_buffer_seconds"`
	MinimumNoticeDays      int       `db:"minimum_notice_days" json:"minimum_notice_days"`
	AvailabilityWindowDays int       `db:"availability_window_days" json:"availability_window_days"`
	BookingFrequencyLimit  int       `db:"booking_frequency_limit" json:"booking_frequency_limit"`
	SchedulingOnWeekends   bool      `db:"scheduling_on_weekends" json:"scheduling_on_weekends"`
	coreEntity.BaseEntity

	Members []GroupMember `db:"-" json:"members"`
}

type GroupMember struct {
	ID          uuid.UUID `db:"id" json:"id"`
	GroupID     uuid.UUID `db:"group_id" json:"group_id"`
	Email       string    `db:"email" json:"email"`
	IsMandatory bool      `db:"is_mandatory" json:"is_mandatory"`
}

// MandatoryEmails returns the emails whose working windows constrain the day.
func (g *AppointmentGroup) MandatoryEmails() []string {
	var emails []string
	for _, m := range g.Members {
		if m.IsMandatory {
			emails = append(emails, m.Email)
		}
	}
	return emails
}

// MemberEmails returns every member email, mandatory or not.
func (g *AppointmentGroup) MemberEmails() []string {
	emails := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		emails = append(emails, m.Email)
	}
	return emails
}
