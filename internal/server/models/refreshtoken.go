package models

import "time"

// RefreshToken is a server-stored long-lived session token. Presenting a
// valid one mints a fresh access/refresh pair and consumes the old token.
type RefreshToken struct {
	Token     string    `json:"-"`
	UserName  string    `json:"username"`
	Expires   time.Time `json:"expires"`
	CreatedAt time.Time `json:"created_at"`
}
