package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoSession is returned by Get when the token maps to no live session.
var ErrNoSession = errors.New("no session")

// Data is the server-held state behind one session token.
type Data struct {
	ID          uuid.UUID `json:"id"`
	SellerID    int64     `json:"seller_id"`
	SellerEmail string    `json:"seller_email"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store keeps session state keyed by an opaque token. Sessions expire after
// an inactivity window; a successful Get refreshes it.
type Store interface {
	// Create stores data under token with a fresh inactivity window.
	Create(ctx context.Context, token string, data Data) error
	// Get returns the data behind a live token and slides its expiry.
	// Returns ErrNoSession for an unknown or expired token; never creates
	// state on a failed lookup.
	Get(ctx context.Context, token string) (*Data, error)
	// Delete destroys the session. Deleting an absent token is a no-op.
	Delete(ctx context.Context, token string) error
}

const tokenBytes = 32

// NewToken mints an opaque session token.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
