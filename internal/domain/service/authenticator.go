package service

import (
	"context"
	"time"
)

// Identity is the result of a successful authentication.
type Identity struct {
	UserID       string
	Email        string // Empty for anonymous identities.
	Anonymous    bool
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time
}

// Authenticator signs users in against the identity provider. Every call
// is bounded by the configured timeout; failures are AuthErrors.
type Authenticator interface {
	// SignInAnonymous creates a fresh anonymous identity.
	SignInAnonymous(ctx context.Context) (*Identity, error)

	// SignIn authenticates an existing email/password account.
	SignIn(ctx context.Context, email, password string) (*Identity, error)

	// SignUp registers a new email/password account and signs it in.
	SignUp(ctx context.Context, email, password string) (*Identity, error)

	// SignOut ends the session of userID. Callers sign in anonymously
	// afterwards to keep a usable identity.
	SignOut(ctx context.Context, userID string) error
}
