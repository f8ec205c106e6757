package models

import "time"

// User is a dashboard account. One household typically has a handful.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // never serialized
	CreatedAt    time.Time `json:"created_at,omitempty"`
}
