package domain

import "time"

// Session is one device session observed while an inquiry was in progress.
type Session struct {
	ID         string    `json:"id"`
	InquiryID  string    `json:"inquiryId"`
	DeviceType string    `json:"deviceType"`
	DeviceID   string    `json:"deviceId"`
	Browser    string    `json:"browser"`
	OS         string    `json:"os"`
	IPAddress  string    `json:"ipAddress"`
	Location   string    `json:"location"`
	Country    string    `json:"country"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CreatedAt  time.Time `json:"createdAt"`
	StartedAt  time.Time `json:"startedAt"`
}

// Event is one entry of an inquiry timeline.
type Event struct {
	ID        string    `json:"id"`
	InquiryID string    `json:"inquiryId"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}
