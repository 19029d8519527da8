package storage

import (
	"context"
	"log/slog"
	"testing"

	domainerrors "photocard/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

func createTestRemote(t *testing.T) *RemoteStore {
	t.Helper()

	s := NewRemoteStore(memblob.OpenBucket(nil), slog.New(slog.DiscardHandler))
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestRemoteStore_PutThenFetch(t *testing.T) {
	ctx := context.Background()
	s := createTestRemote(t)

	locator, err := s.Put(ctx, []byte("png"), "images/cards/c1.png")
	require.NoError(t, err)
	assert.Equal(t, "images/cards/c1.png", locator)

	data, err := s.Fetch(ctx, locator)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)

	data, err = s.Fetch(ctx, "gs://bucket/images/cards/c1.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}

func TestRemoteStore_FetchMissing(t *testing.T) {
	s := createTestRemote(t)

	_, err := s.Fetch(context.Background(), "nope.png")
	assert.ErrorIs(t, err, domainerrors.ErrStorageNotFound)
}

func TestRemoteStore_FetchFromClosedBucket(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	s := NewRemoteStore(bucket, slog.New(slog.DiscardHandler))
	require.NoError(t, bucket.Close())

	_, err := s.Fetch(context.Background(), "a.png")
	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
}

func TestCache_ReadWrite(t *testing.T) {
	ctx := context.Background()
	bucket, err := fileblob.OpenBucket(t.TempDir(), &fileblob.Options{CreateDir: true})
	require.NoError(t, err)
	c := NewCache(bucket, slog.New(slog.DiscardHandler))
	t.Cleanup(func() { _ = c.Close() })

	_, ok, err := c.Read(ctx, "idol.jpg")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Write(ctx, "idol.jpg", []byte("jpg")))

	data, ok, err := c.Read(ctx, "idol.jpg")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("jpg"), data)
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		locator string
		want    string
	}{
		{"images/a.png", "images/a.png"},
		{"/images/a.png", "images/a.png"},
		{"gs://bucket/images/a.png", "images/a.png"},
		{"s3://bucket/images/a.png", "images/a.png"},
		{"https://firebasestorage.googleapis.com/v0/b/app.appspot.com/o/images%2Fa.png?alt=media", "images/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.locator, func(t *testing.T) {
			assert.Equal(t, tt.want, objectKey(tt.locator))
		})
	}
}
