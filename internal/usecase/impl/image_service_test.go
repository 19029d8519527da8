package impl

import (
	"context"
	"testing"

	"photocard/config"
	"photocard/internal/domain/entity"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/infra/storage"
	"photocard/internal/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestImageService_UploadThenLoad(t *testing.T) {
	remote := storage.NewRemoteStore(memblob.OpenBucket(nil), testLogger())
	cache := storage.NewCache(memblob.OpenBucket(nil), testLogger())
	t.Cleanup(func() {
		_ = remote.Close()
		_ = cache.Close()
	})
	m := media.NewMaterializer(remote, cache, &config.Config{}, testLogger())
	svc := NewImageService(m, testLogger())
	ctx := context.Background()

	img, err := svc.Upload(ctx, []byte("bytes"), "card.png")
	require.NoError(t, err)

	data, err := svc.Load(ctx, img)
	require.NoError(t, err)
	assert.Equal(t, []byte("bytes"), data)

	_, err = svc.Load(ctx, entity.Image{Name: "none.png", Locator: "none.png"})
	assert.ErrorIs(t, err, domainerrors.ErrStorageNotFound)
}
