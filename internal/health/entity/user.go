package entity

import "time"

// User is an account allowed to upload data. PasswordHash never leaves the service.
type User struct {
	ID           int64
	Username     string
	FullName     string
	Email        string
	PasswordHash string
	Disabled     bool
	CreatedAt    time.Time
}
