package storage

import (
	"context"
	"log/slog"

	"photocard/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// Cache is the device-local image cache keyed by logical name.
type Cache struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewCache wraps an open bucket, usually a fileblob directory.
func NewCache(bucket *blob.Bucket, logger *slog.Logger) *Cache {
	return &Cache{bucket: bucket, logger: logger}
}

// Read returns the cached bytes of name. A miss is not an error.
func (c *Cache) Read(ctx context.Context, name string) ([]byte, bool, error) {
	data, err := c.bucket.ReadAll(ctx, name)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, false, nil
		}

		return nil, false, storageError("read cache", name, err)
	}

	return data, true, nil
}

// Write stores data under name, replacing any previous copy.
func (c *Cache) Write(ctx context.Context, name string, data []byte) error {
	if err := c.bucket.WriteAll(ctx, name, data, nil); err != nil {
		c.logger.Warn("Cache write failed", slog.String("name", name), slog.Any("error", err))

		return storageError("write cache", name, err)
	}

	return nil
}

// Close releases the bucket.
func (c *Cache) Close() error {
	return errors.WithStack(c.bucket.Close())
}
