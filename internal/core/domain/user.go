package domain

import "time"

// User is a stored credential: the only identity that can log in and the
// single source of truth for a caller's role.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
