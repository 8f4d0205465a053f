package entities

import "time"

// AccessLog records a staff sign-in.
type AccessLog struct {
	ID        string
	Username  string
	IP        string
	Timestamp time.Time
}
