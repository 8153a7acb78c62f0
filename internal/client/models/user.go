package models

import "time"

// Credentials are exchanged for an access token.
// Password is wiped by the caller once the request is sent.
type Credentials struct {
	Email    string
	Password []byte
}

// Registration holds the fields of a new account.
type Registration struct {
	Name        string
	Email       string
	DateOfBirth string // YYYY-MM-DD
	Password    []byte
}

// TokenClaims is what the client can read out of its own access token for
// display. Nothing here is verified and nothing here grants access.
type TokenClaims struct {
	UserID    string
	ExpiresAt time.Time
	SavedAt   time.Time
}
