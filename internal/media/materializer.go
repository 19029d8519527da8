// Package media turns image locators into local bytes, preferring the
// device cache over remote storage.
package media

import (
	"context"
	"log/slog"
	"path"
	"time"

	"photocard/config"
	"photocard/internal/domain/entity"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/service"
	"photocard/internal/errors"

	"golang.org/x/sync/singleflight"
)

const defaultFetchTimeout = 30 * time.Second

// Materializer resolves images through the cache and the remote store.
// Concurrent misses for the same name share one fetch.
type Materializer struct {
	remote       service.BlobStore
	cache        service.BlobCache
	fetchTimeout time.Duration
	uploadPrefix string
	logger       *slog.Logger

	group singleflight.Group
}

// NewMaterializer creates a materializer from the storage configuration.
func NewMaterializer(remote service.BlobStore, cache service.BlobCache, cfg *config.Config, logger *slog.Logger) *Materializer {
	m := &Materializer{
		remote:       remote,
		cache:        cache,
		fetchTimeout: defaultFetchTimeout,
		logger:       logger,
	}
	if cfg.Storage != nil {
		if cfg.Storage.FetchTimeout > 0 {
			m.fetchTimeout = cfg.Storage.FetchTimeout
		}
		m.uploadPrefix = cfg.Storage.UploadPrefix
	}

	return m
}

// Resolve returns a future for the bytes of img. A cache hit is already
// Found; a miss is Fetching until the background fetch settles it. The
// fetch is detached from ctx's cancellation and bounded by the fetch
// timeout, so the cache still fills if the caller goes away.
func (m *Materializer) Resolve(ctx context.Context, img entity.Image) *Future {
	if img.Name == "" {
		return settled(nil, domainerrors.ErrValidationFailed.WithDetails("image has no name"))
	}

	data, ok, err := m.cache.Read(ctx, img.Name)
	if err != nil {
		m.logger.Warn("Image cache read failed", slog.String("name", img.Name), slog.Any("error", err))
	}
	if ok {
		return settled(data, nil)
	}
	if img.Locator == "" {
		return settled(nil, domainerrors.ErrStorageNotFound.WithDetails(img.Name))
	}

	f := newFuture()
	ch := m.group.DoChan(img.Name, func() (any, error) {
		return m.fetch(context.WithoutCancel(ctx), img)
	})
	go func() {
		res := <-ch
		if res.Err != nil {
			f.settle(nil, res.Err)

			return
		}
		f.settle(res.Val.([]byte), nil)
	}()

	return f
}

func (m *Materializer) fetch(ctx context.Context, img entity.Image) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, m.fetchTimeout)
	defer cancel()

	data, err := m.remote.Fetch(ctx, img.Locator)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domainerrors.ErrStorageUnavailable.WithDetails("fetch " + img.Name + " timed out")
		}

		return nil, err
	}

	if err := m.cache.Write(ctx, img.Name, data); err != nil {
		// The bytes are still good; the next Resolve fetches again.
		m.logger.Warn("Failed to cache image", slog.String("name", img.Name), slog.Any("error", err))
	}

	return data, nil
}

// Upload stores data remotely under the upload prefix and warms the cache.
// The returned image names the cached copy and the remote object.
func (m *Materializer) Upload(ctx context.Context, data []byte, name string) (entity.Image, error) {
	if name == "" || len(data) == 0 {
		return entity.Image{}, domainerrors.ErrValidationFailed.WithDetails("upload needs a name and data")
	}

	name = path.Base(name)
	locator, err := m.remote.Put(ctx, data, path.Join(m.uploadPrefix, name))
	if err != nil {
		return entity.Image{}, err
	}

	if err := m.cache.Write(ctx, name, data); err != nil {
		m.logger.Warn("Failed to cache uploaded image", slog.String("name", name), slog.Any("error", err))
	}

	return entity.Image{Name: name, Locator: locator}, nil
}
