// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an identity record. The password hash is opaque to every layer
// except the password hasher and is never serialized to clients.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
