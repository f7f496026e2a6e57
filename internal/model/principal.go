package model

import "time"

// Principal is an account able to author snacks.
//
// Credential holds the bcrypt hash, never the plaintext. Principals are
// immutable apart from the credential and are never deleted.
type Principal struct {
	ID         int64
	Username   string
	Credential string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
