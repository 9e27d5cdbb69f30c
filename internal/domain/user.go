package domain

import "time"

// User represents a registered account.
// Owned by the auth service; the booking core only references user ids.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
