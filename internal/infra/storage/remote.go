package storage

import (
	"context"
	"log/slog"

	"photocard/internal/errors"

	"gocloud.dev/blob"
)

// RemoteStore is the remote image bucket.
type RemoteStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewRemoteStore wraps an open bucket.
func NewRemoteStore(bucket *blob.Bucket, logger *slog.Logger) *RemoteStore {
	return &RemoteStore{bucket: bucket, logger: logger}
}

// Fetch reads the object at locator.
func (s *RemoteStore) Fetch(ctx context.Context, locator string) ([]byte, error) {
	key := objectKey(locator)
	if key == "" {
		return nil, storageError("fetch", locator, errors.New("empty locator"))
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		s.logger.Warn("Image fetch failed", slog.String("key", key), slog.Any("error", err))

		return nil, storageError("fetch", key, err)
	}

	return data, nil
}

// Put writes data at path and returns its key as the locator.
func (s *RemoteStore) Put(ctx context.Context, data []byte, path string) (string, error) {
	key := objectKey(path)
	if err := s.bucket.WriteAll(ctx, key, data, nil); err != nil {
		s.logger.Warn("Image upload failed", slog.String("key", key), slog.Any("error", err))

		return "", storageError("put", key, err)
	}

	return key, nil
}

// Close releases the bucket.
func (s *RemoteStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
