package usecase

import (
	"context"

	"photocard/internal/domain/entity"
)

// ImageUsecase loads and uploads images.
type ImageUsecase interface {
	// Load waits for the bytes of img, from the cache or remote storage.
	Load(ctx context.Context, img entity.Image) ([]byte, error)

	// Upload stores a new image and returns its locator pair.
	Upload(ctx context.Context, data []byte, name string) (entity.Image, error)
}
