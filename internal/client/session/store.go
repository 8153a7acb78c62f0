// Package session keeps the bearer credential between runs of the client.
//
// At most one credential is stored at a time: Set replaces whatever was
// there, and Clear removes it. The store never inspects the token; whether it
// is still valid is only learned from the backend's answer to a request.
package session

import (
	"context"
	"errors"
	"time"
)

const (
	keyAccessToken = "access_token"
	keySavedAt     = "access_token_saved_at"
)

// ErrEmptyToken is returned by Set for a blank credential.
var ErrEmptyToken = errors.New("empty token")

// Credential is the stored token plus the moment it was saved locally.
type Credential struct {
	Token   string
	SavedAt time.Time
}

// Store persists the current credential.
type Store interface {
	// Get returns the stored token. found is false when there is none.
	Get(ctx context.Context) (token string, found bool, err error)
	// Set stores token, replacing any previous credential.
	Set(ctx context.Context, token string) error
	// Clear removes the credential. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
	// Load returns the full credential record.
	Load(ctx context.Context) (Credential, bool, error)
}

var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
