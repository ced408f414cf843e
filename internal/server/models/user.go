// Package models defines server-side data models persisted by the
// credential, history, and session stores.
package models

import "time"

// User is a registered account. Usernames are unique and case-sensitive.
// Users are created once at registration and never mutated or deleted.
type User struct {
	ID           string    `json:"id"`
	UserName     string    `json:"-"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
