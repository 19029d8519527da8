// Package storage implements the image stores on gocloud.dev buckets.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"photocard/config"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/service"
	"photocard/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selected by URL scheme.
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// StoreParams holds dependencies for the stores, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens the remote bucket named by storage.remoteBucketUrl.
func NewBlobStore(params StoreParams) (service.BlobStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.RemoteBucketURL == "" {
		return nil, errors.New("storage remote bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.RemoteBucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.RemoteBucketURL)
	}

	store := NewRemoteStore(bucket, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	params.Logger.Info("Remote image bucket opened", slog.String("url", cfg.RemoteBucketURL))

	return store, nil
}

// NewBlobCache opens the local cache directory, creating it if needed.
func NewBlobCache(params StoreParams) (service.BlobCache, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.CacheDir == "" {
		return nil, errors.New("storage cache directory is required")
	}

	bucket, err := fileblob.OpenBucket(cfg.CacheDir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open cache directory %s", cfg.CacheDir)
	}

	cache := NewCache(bucket, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return cache.Close()
		},
	})

	return cache, nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewBlobStore,
		NewBlobCache,
	),
)

// storageError classifies a bucket failure.
func storageError(op, key string, err error) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return domainerrors.ErrStorageNotFound.WithDetails(key)
	}

	return domainerrors.ErrStorageUnavailable.WithDetails(op + " " + key + ": " + err.Error())
}

// objectKey turns a locator into a bucket key. Plain keys pass through;
// gs:// and s3:// URLs yield their path, and Firebase download URLs
// (/v0/b/<bucket>/o/<escaped key>) yield the unescaped object name.
func objectKey(locator string) string {
	if !strings.Contains(locator, "://") {
		return strings.TrimPrefix(locator, "/")
	}

	u, err := url.Parse(locator)
	if err != nil {
		return locator
	}

	if _, obj, ok := strings.Cut(u.EscapedPath(), "/o/"); ok && strings.HasPrefix(u.Path, "/v0/b/") {
		if name, err := url.PathUnescape(obj); err == nil {
			return name
		}
	}

	return strings.TrimPrefix(path.Clean(u.Path), "/")
}
