// Package models defines the row shapes persisted by the platform record
// store.
package models

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}
