package dto

type WindowInput struct {
	Weekday    int    `json:"weekday"`
	StartClock string `json:"start_clock"`
	EndClock   string `json:"end_clock"`
}

type ReplaceWindowsRequest struct {
	Windows []WindowInput `json:"windows"`
}
