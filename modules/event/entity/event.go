package entity

import (
	"time"

	coreEntity "go-appointment-api/core/entity"

	"github.com/google/uuid"
)

// Event is a confirmed booking on an appointment group. StartsOn/EndsOn are
// stored in UTC; Name is a short public identifier safe to put in links.
type Event struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	GroupID     uuid.UUID `db:"group_id" json:"group_id"`
	Subject     string    `db:"subject" json:"subject"`
	StartsOn    time.Time `db:"starts_on" json:"starts_on"`
	EndsOn      time.Time `db:"ends_on" json:"ends_on"`
	BookerEmail string    `db:"booker_email" json:"booker_email"`
	coreEntity.BaseEntity
}
