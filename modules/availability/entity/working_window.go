package entity

import (
	"github.com/google/uuid"
)

// WorkingWindow is one weekly-recurring availability interval for a member.
// Weekday follows time.Weekday numbering (Sunday = 0). StartClock and
// EndClock are canonical "HH:MM:SS" wall-clock strings; lexical order on the
// canonical form equals chronological order, "24:00:00" marks end of day.
type WorkingWindow struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Email      string    `db:"email" json:"email"`
	Weekday    int       `db:"weekday" json:"weekday"`
	StartClock string    `db:"start_clock" json:"start_clock"`
	EndClock   string    `db:"end_clock" json:"end_clock"`
}
