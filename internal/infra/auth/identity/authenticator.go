// Package identity signs users in through the Firebase Identity Toolkit.
package identity

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"photocard/config"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/service"
	"photocard/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

const defaultTimeout = 15 * time.Second

// TokenRevoker ends every session of a user. *auth.Client satisfies it.
type TokenRevoker interface {
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// Authenticator implements service.Authenticator over the Identity Toolkit
// relying party API.
type Authenticator struct {
	relyingParty *identitytoolkit.RelyingpartyService
	revoker      TokenRevoker
	timeout      time.Duration
	minPassword  int
	logger       *slog.Logger
}

// NewAuthenticator builds the authenticator from the project's web API key.
func NewAuthenticator(
	ctx context.Context,
	cfg *config.Config,
	revoker TokenRevoker,
	logger *slog.Logger,
	opts ...option.ClientOption,
) (*Authenticator, error) {
	if cfg.Auth == nil || cfg.Auth.APIKey == "" {
		return nil, errors.New("auth API key is required")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(cfg.Auth.APIKey)}, opts...)
	svc, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit service")
	}

	timeout := cfg.Auth.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Authenticator{
		relyingParty: svc.Relyingparty,
		revoker:      revoker,
		timeout:      timeout,
		minPassword:  cfg.Auth.MinPasswordLength,
		logger:       logger,
	}, nil
}

// ProvideAuthenticator adapts NewAuthenticator to the service port for Fx.
func ProvideAuthenticator(ctx context.Context, cfg *config.Config, revoker TokenRevoker, logger *slog.Logger) (service.Authenticator, error) {
	return NewAuthenticator(ctx, cfg, revoker, logger)
}

// SignInAnonymous creates a new anonymous account.
func (a *Authenticator) SignInAnonymous(ctx context.Context) (*service.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.relyingParty.
		SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return nil, a.mapError("anonymous sign-in", err)
	}

	return identityFrom(resp.LocalId, "", true, resp.IdToken, resp.RefreshToken, resp.ExpiresIn), nil
}

// SignIn verifies an email/password pair.
func (a *Authenticator) SignIn(ctx context.Context, email, password string) (*service.Identity, error) {
	if email == "" || password == "" {
		return nil, domainerrors.ErrInvalidCredentials.WithDetails("email and password are required")
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.relyingParty.
		VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
			Email:             email,
			Password:          password,
			ReturnSecureToken: true,
		}).
		Context(ctx).
		Do()
	if err != nil {
		return nil, a.mapError("sign-in", err)
	}

	return identityFrom(resp.LocalId, resp.Email, false, resp.IdToken, resp.RefreshToken, resp.ExpiresIn), nil
}

// SignUp registers an email/password account. The new account is signed in.
func (a *Authenticator) SignUp(ctx context.Context, email, password string) (*service.Identity, error) {
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}
	if len(password) < a.minPassword {
		return nil, domainerrors.ErrWeakPassword.WithDetails("password is shorter than the minimum length")
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.relyingParty.
		SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
			Email:    email,
			Password: password,
		}).
		Context(ctx).
		Do()
	if err != nil {
		return nil, a.mapError("sign-up", err)
	}

	email = firstNonEmpty(resp.Email, email)

	return identityFrom(resp.LocalId, email, false, resp.IdToken, resp.RefreshToken, resp.ExpiresIn), nil
}

// SignOut revokes the refresh tokens of userID.
func (a *Authenticator) SignOut(ctx context.Context, userID string) error {
	if userID == "" || a.revoker == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	if err := a.revoker.RevokeRefreshTokens(ctx, userID); err != nil {
		a.logger.Warn("Failed to revoke refresh tokens",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return domainerrors.ErrAuthFailed.WithDetails("sign-out: " + err.Error())
	}

	return nil
}

// mapError turns an Identity Toolkit failure into an auth error. The
// service reports the reason as the upper-case error message.
func (a *Authenticator) mapError(op string, err error) error {
	a.logger.Warn("Identity request failed", slog.String("op", op), slog.Any("error", err))

	apiErr, ok := errors.AsType[*googleapi.Error](err)
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) {
			return domainerrors.ErrAuthFailed.WithDetails(op + " timed out")
		}

		return domainerrors.ErrAuthFailed.WithDetails(op)
	}

	reason := apiErr.Message
	for _, item := range apiErr.Errors {
		if item.Message != "" {
			reason = item.Message

			break
		}
	}

	switch {
	case strings.HasPrefix(reason, "EMAIL_EXISTS"):
		return domainerrors.ErrEmailAlreadyInUse
	case strings.HasPrefix(reason, "WEAK_PASSWORD"):
		return domainerrors.ErrWeakPassword.WithDetails(reason)
	case strings.HasPrefix(reason, "INVALID_PASSWORD"),
		strings.HasPrefix(reason, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(reason, "INVALID_LOGIN_CREDENTIALS"),
		strings.HasPrefix(reason, "INVALID_EMAIL"):
		return domainerrors.ErrInvalidCredentials
	default:
		return domainerrors.ErrAuthFailed.WithDetails(op + ": " + reason)
	}
}

func identityFrom(userID, email string, anonymous bool, idToken, refreshToken string, expiresIn int64) *service.Identity {
	return &service.Identity{
		UserID:       firstNonEmpty(userID, subjectOf(idToken)),
		Email:        email,
		Anonymous:    anonymous,
		IDToken:      idToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiryOf(idToken, expiresIn),
	}
}

// expiryOf prefers the exp claim of the ID token. The token comes straight
// from the provider over TLS, so its signature is not checked here.
func expiryOf(idToken string, expiresIn int64) time.Time {
	if claims, ok := parseClaims(idToken); ok {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	if expiresIn > 0 {
		return time.Now().Add(time.Duration(expiresIn) * time.Second)
	}

	return time.Time{}
}

func subjectOf(idToken string) string {
	claims, ok := parseClaims(idToken)
	if !ok {
		return ""
	}
	if uid, ok := claims["user_id"].(string); ok && uid != "" {
		return uid
	}
	sub, _ := claims.GetSubject()

	return sub
}

func parseClaims(idToken string) (jwt.MapClaims, bool) {
	if idToken == "" {
		return nil, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return nil, false
	}

	return claims, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
