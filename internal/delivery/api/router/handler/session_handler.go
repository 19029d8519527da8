package handler

import (
	"photocard/internal/delivery/api/response"
	"photocard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
}

// SessionHandler switches the signed-in account
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{sessionUC: params.SessionUC}
}

// SignInRequest represents the request body for an email sign-in
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *SessionHandler) SignInAnonymous(c echo.Context) error {
	session, err := h.sessionUC.SignInAnonymous(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, NewSessionView(session))
}

func (h *SessionHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.sessionUC.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, NewSessionView(session))
}

func (h *SessionHandler) SignUp(c echo.Context) error {
	var req usecase.SignUpInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.sessionUC.SignUp(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, NewSessionView(session))
}

// SignOut answers with the anonymous session that replaced the old one.
func (h *SessionHandler) SignOut(c echo.Context) error {
	session, err := h.sessionUC.SignOut(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, NewSessionView(session))
}
