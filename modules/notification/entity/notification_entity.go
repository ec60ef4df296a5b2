package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	coreEntity "go-appointment-api/core/entity"

	"github.com/google/uuid"
)

const KindBookingConfirmed = "booking_confirmed"

type Notification struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Recipient string     `db:"recipient" json:"recipient"`
	Kind      string     `db:"kind" json:"kind"`
	Payload   JSONB      `db:"payload" json:"payload"`
	SentAt    *time.Time `db:"sent_at" json:"sent_at"`
	coreEntity.BaseEntity
}

type JSONB map[string]interface{}

func (a JSONB) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *JSONB) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}
