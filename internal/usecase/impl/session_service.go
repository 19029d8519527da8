// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "photocard/internal/delivery/context"
	"photocard/internal/domain/entity"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/repository"
	"photocard/internal/domain/service"
	"photocard/internal/errors"
	"photocard/internal/replica"
	"photocard/internal/usecase"
)

const anonymousName = "Anonymous"

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	auth    service.Authenticator
	catalog repository.CatalogRepository
	replica *replica.Replica
	logger  *slog.Logger

	mu       sync.Mutex
	identity *service.Identity
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	auth service.Authenticator,
	catalog repository.CatalogRepository,
	rep *replica.Replica,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		auth:    auth,
		catalog: catalog,
		replica: rep,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignInAnonymous creates an anonymous account with its user document.
func (srv *sessionService) SignInAnonymous(ctx context.Context) (*usecase.Session, error) {
	identity, err := srv.auth.SignInAnonymous(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	user := &entity.User{ID: identity.UserID, Name: anonymousName, Anonymous: true}
	if err := srv.catalog.CreateUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create anonymous user")
	}

	srv.log(ctx).Info("Signed in anonymously", slog.String("user_id", identity.UserID))

	return srv.switchTo(identity), nil
}

// SignIn authenticates an existing account. Its user document already exists.
func (srv *sessionService) SignIn(ctx context.Context, email, password string) (*usecase.Session, error) {
	identity, err := srv.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Signed in", slog.String("user_id", identity.UserID))

	return srv.switchTo(identity), nil
}

// SignUp registers an account and writes its user document.
func (srv *sessionService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.Session, error) {
	identity, err := srv.auth.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	user := &entity.User{ID: identity.UserID, Name: input.Name, Email: input.Email}
	if err := srv.catalog.CreateUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Signed up", slog.String("user_id", identity.UserID))

	return srv.switchTo(identity), nil
}

// SignOut revokes the current session and continues anonymously. A failed
// revocation is logged; the anonymous sign-in still happens.
func (srv *sessionService) SignOut(ctx context.Context) (*usecase.Session, error) {
	if userID := srv.replica.CurrentUserID(); userID != "" {
		if err := srv.auth.SignOut(ctx, userID); err != nil {
			srv.log(ctx).Warn("Sign-out failed, continuing anonymously",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
		}
	}

	return srv.SignInAnonymous(ctx)
}

// Current returns the active session.
func (srv *sessionService) Current(context.Context) (*usecase.Session, error) {
	srv.mu.Lock()
	identity := srv.identity
	srv.mu.Unlock()

	if identity == nil {
		return nil, domainerrors.ErrNoCurrentUser
	}

	return &usecase.Session{Identity: identity, User: srv.replica.CurrentUser()}, nil
}

func (srv *sessionService) switchTo(identity *service.Identity) *usecase.Session {
	srv.mu.Lock()
	srv.identity = identity
	srv.mu.Unlock()

	srv.replica.TrackUser(identity.UserID)

	return &usecase.Session{Identity: identity, User: srv.replica.CurrentUser()}
}
