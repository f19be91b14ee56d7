package auth

import (
	"context"
	"time"
)

// Identity is the verified caller of an authenticated request.
// Nickname is a display-name snapshot carried by the token.
type Identity struct {
	ExpiresAt time.Time `json:"-"`
	UserID    string    `json:"userId"`
	Nickname  string    `json:"nickname"`
}

// IsZero reports whether the identity carries no user id.
func (i Identity) IsZero() bool {
	return i.UserID == ""
}

// Verifier turns a credential token into a verified Identity.
// Implementations must reject expired or tampered tokens.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
