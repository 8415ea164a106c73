package model

import "time"

// User represents a registered customer or store administrator.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Admin        bool
	CreatedAt    time.Time
}
