// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"photocard/internal/domain/entity"
	"photocard/internal/domain/service"
)

// Session is the signed-in identity together with its replicated user.
// User is nil until the users feed delivers the record.
type Session struct {
	Identity *service.Identity
	User     *entity.User
}

// SignUpInput holds the data required to register an account.
type SignUpInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionUsecase defines the interface for sign-in and sign-out. Every
// successful call switches the user tracked by the replica.
type SessionUsecase interface {
	SignInAnonymous(ctx context.Context) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, input *SignUpInput) (*Session, error)

	// SignOut ends the current session and signs in anonymously.
	SignOut(ctx context.Context) (*Session, error)

	// Current returns the active session or ErrNoCurrentUser.
	Current(ctx context.Context) (*Session, error)
}
