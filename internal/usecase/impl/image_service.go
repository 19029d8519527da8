package impl

import (
	"context"
	"log/slog"

	deliverycontext "photocard/internal/delivery/context"
	"photocard/internal/domain/entity"
	"photocard/internal/media"
	"photocard/internal/usecase"
)

type imageService struct {
	materializer *media.Materializer
	logger       *slog.Logger
}

// NewImageService creates a new image service instance
func NewImageService(materializer *media.Materializer, logger *slog.Logger) usecase.ImageUsecase {
	return &imageService{materializer: materializer, logger: logger}
}

// Load resolves img and waits for its bytes.
func (s *imageService) Load(ctx context.Context, img entity.Image) ([]byte, error) {
	future := s.materializer.Resolve(ctx, img)
	if future.State() == media.Fetching {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Image not cached, fetching",
			slog.String("name", img.Name),
		)
	}

	return future.Wait(ctx)
}

// Upload stores an image remotely and in the cache.
func (s *imageService) Upload(ctx context.Context, data []byte, name string) (entity.Image, error) {
	img, err := s.materializer.Upload(ctx, data, name)
	if err != nil {
		return entity.Image{}, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Image uploaded",
		slog.String("name", img.Name),
		slog.String("locator", img.Locator),
	)

	return img, nil
}
