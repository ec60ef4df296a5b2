package dto

import "time"

// BusyBlock is one busy interval as the provider reports it. Start and End
// are absolute instants; TimeZone is the calendar's zone label, kept for
// the response payloads.
type BusyBlock struct {
	Email    string    `json:"email"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	TimeZone string    `json:"time_zone,omitempty"`
}

type ConnectResponse struct {
	AuthURL string `json:"auth_url"`
}

type ConnectionResponse struct {
	Email       string `json:"email"`
	ConnectedAt string `json:"connected_at"`
}
