package handler

import (
	"log/slog"
	"strconv"

	"photocard/internal/delivery/api/response"
	"photocard/internal/domain/entity"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/replica"
	"photocard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Replica   *replica.Replica
	Logger    *slog.Logger
}

// CatalogHandler serves the replicated catalogue and its writes
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	replica   *replica.Replica
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		replica:   params.Replica,
		logger:    params.Logger,
	}
}

func (h *CatalogHandler) ListIdols(c echo.Context) error {
	return response.List(c, mapAll(h.replica.Idols(), NewIdolView))
}

func (h *CatalogHandler) ListArtists(c echo.Context) error {
	return response.List(c, mapAll(h.replica.Artists(), NewArtistView))
}

func (h *CatalogHandler) ListAlbums(c echo.Context) error {
	return response.List(c, mapAll(h.replica.Albums(), NewAlbumView))
}

// ListPhotocards accepts idolId, artistId and albumId filters.
func (h *CatalogHandler) ListPhotocards(c echo.Context) error {
	idolID, artistID, albumID := c.QueryParam("idolId"), c.QueryParam("artistId"), c.QueryParam("albumId")

	cards := h.replica.Photocards()
	views := make([]PhotocardView, 0, len(cards))
	for _, p := range cards {
		if (idolID != "" && p.IdolRef.ID != idolID) ||
			(artistID != "" && p.ArtistRef.ID != artistID) ||
			(albumID != "" && p.AlbumRef.ID != albumID) {
			continue
		}
		views = append(views, NewPhotocardView(p))
	}

	return response.List(c, views)
}

// ListListings accepts a sold=true|false filter.
func (h *CatalogHandler) ListListings(c echo.Context) error {
	var sold *bool
	if raw := c.QueryParam("sold"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("sold must be a boolean"))
		}
		sold = &v
	}

	listings := h.replica.Listings()
	views := make([]ListingView, 0, len(listings))
	for _, l := range listings {
		if sold != nil && l.Sold != *sold {
			continue
		}
		views = append(views, NewListingView(l))
	}

	return response.List(c, views)
}

func (h *CatalogHandler) GetPhotocard(c echo.Context) error {
	p, ok := h.replica.Lookup(entity.NewRef(entity.CollectionPhotocards, c.Param("id"))).(*entity.Photocard)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrNotFound.WithDetails("photocard "+c.Param("id")))
	}

	return response.OK(c, NewPhotocardView(p))
}

func (h *CatalogHandler) AddIdol(c echo.Context) error {
	var req usecase.AddIdolInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	idol, err := h.catalogUC.AddIdol(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, NewIdolView(idol))
}

func (h *CatalogHandler) AddArtist(c echo.Context) error {
	var req usecase.AddArtistInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	artist, err := h.catalogUC.AddArtist(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, NewArtistView(artist))
}

func (h *CatalogHandler) AddAlbum(c echo.Context) error {
	var req usecase.AddAlbumInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	album, err := h.catalogUC.AddAlbum(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, NewAlbumView(album))
}

func (h *CatalogHandler) AddPhotocard(c echo.Context) error {
	var req usecase.AddPhotocardInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	card, err := h.catalogUC.AddPhotocard(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, NewPhotocardView(card))
}

func (h *CatalogHandler) AddListing(c echo.Context) error {
	var req usecase.AddListingInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.catalogUC.AddListing(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, NewListingView(listing))
}

func (h *CatalogHandler) MarkListingSold(c echo.Context) error {
	listing, err := h.catalogUC.MarkListingSold(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, NewListingView(listing))
}

func (h *CatalogHandler) DeleteIdol(c echo.Context) error {
	if err := h.catalogUC.DeleteIdol(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// bindAndValidate decodes the request body into req and checks its tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}
