package handler

import (
	"context"
	"net/url"

	"photocard/internal/delivery/api/response"
	"photocard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MeHandlerParams holds dependencies for MeHandler, injected by Fx.
type MeHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	CatalogUC usecase.CatalogUsecase
	SearchUC  usecase.SearchHistoryUsecase
}

// MeHandler serves the current user's profile, lists and searches
type MeHandler struct {
	sessionUC usecase.SessionUsecase
	catalogUC usecase.CatalogUsecase
	searchUC  usecase.SearchHistoryUsecase
}

// NewMeHandler is the constructor for MeHandler
func NewMeHandler(params MeHandlerParams) *MeHandler {
	return &MeHandler{
		sessionUC: params.SessionUC,
		catalogUC: params.CatalogUC,
		searchUC:  params.SearchUC,
	}
}

// RecordSearchRequest represents the request body for recording a search
type RecordSearchRequest struct {
	Text string `json:"text" validate:"required,max=200"`
}

func (h *MeHandler) Get(c echo.Context) error {
	session, err := h.sessionUC.Current(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, NewSessionView(session))
}

func (h *MeHandler) AddToCollection(c echo.Context) error {
	return h.edit(c, h.catalogUC.AddToCollection)
}

func (h *MeHandler) RemoveFromCollection(c echo.Context) error {
	return h.edit(c, h.catalogUC.RemoveFromCollection)
}

func (h *MeHandler) AddFavourite(c echo.Context) error {
	return h.edit(c, h.catalogUC.AddFavourite)
}

func (h *MeHandler) RemoveFavourite(c echo.Context) error {
	return h.edit(c, h.catalogUC.RemoveFavourite)
}

func (h *MeHandler) AddToWishlist(c echo.Context) error {
	return h.edit(c, h.catalogUC.AddToWishlist)
}

func (h *MeHandler) RemoveFromWishlist(c echo.Context) error {
	return h.edit(c, h.catalogUC.RemoveFromWishlist)
}

// edit applies one list operation to the :photocardId of the path.
func (h *MeHandler) edit(c echo.Context, op func(ctx context.Context, photocardID string) error) error {
	if err := op(c.Request().Context(), c.Param("photocardId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func (h *MeHandler) ListSearches(c echo.Context) error {
	entries, err := h.searchUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, mapAll(entries, NewSearchView))
}

func (h *MeHandler) RecordSearch(c echo.Context) error {
	var req RecordSearchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.searchUC.Record(c.Request().Context(), req.Text); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func (h *MeHandler) ForgetSearch(c echo.Context) error {
	text, err := url.PathUnescape(c.Param("text"))
	if err != nil {
		text = c.Param("text")
	}

	if err := h.searchUC.Forget(c.Request().Context(), text); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Search matches ?q= against the catalogue and records it for the
// current user.
func (h *MeHandler) Search(c echo.Context) error {
	found, err := h.searchUC.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, mapAll(found, NewPhotocardView))
}
