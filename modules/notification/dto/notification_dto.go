package dto

import "github.com/google/uuid"

// TaskTypeBookingConfirmed is the asynq task type for confirmation delivery.
const TaskTypeBookingConfirmed = "notification:booking_confirmed"

// DeliverPayload is the asynq task body: just the row to deliver.
type DeliverPayload struct {
	NotificationID uuid.UUID `json:"notification_id"`
}
