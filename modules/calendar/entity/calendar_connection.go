package entity

import (
	"time"

	coreEntity "go-appointment-api/core/entity"

	"github.com/google/uuid"
)

// CalendarConnection stores a member's Google Calendar credentials, keyed by
// the member email used in appointment group configuration.
type CalendarConnection struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	AccessToken    string    `db:"access_token" json:"-"`
	RefreshToken   string    `db:"refresh_token" json:"-"`
	TokenExpiresAt time.Time `db:"token_expires_at" json:"token_expires_at"`
	coreEntity.BaseEntity
}
