package dto

// BookRequest books one of the currently free slots of a group.
// StartTime is the slot's exact start instant in RFC3339.
type BookRequest struct {
	Subject   string `json:"subject"`
	Email     string `json:"email"`
	StartTime string `json:"start_time"`
}
