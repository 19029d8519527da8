package handler

import (
	"io"
	"net/http"

	"photocard/internal/delivery/api/response"
	"photocard/internal/domain/entity"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	ImageUC usecase.ImageUsecase
}

// ImageHandler serves image bytes and accepts uploads
type ImageHandler struct {
	imageUC usecase.ImageUsecase
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{imageUC: params.ImageUC}
}

// Get returns the bytes of :name, fetching them from ?locator= on a cache miss.
func (h *ImageHandler) Get(c echo.Context) error {
	img := entity.Image{Name: c.Param("name"), Locator: c.QueryParam("locator")}

	data, err := h.imageUC.Load(c.Request().Context(), img)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "private, max-age=86400")

	return c.Blob(http.StatusOK, http.DetectContentType(data), data)
}

// Upload stores the multipart "file" field and returns its image pair.
func (h *ImageHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("file is required"))
	}

	f, err := fh.Open()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("unreadable upload"))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("unreadable upload"))
	}

	img, err := h.imageUC.Upload(c.Request().Context(), data, fh.Filename)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, img)
}
