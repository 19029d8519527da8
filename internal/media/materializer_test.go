package media

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"photocard/config"
	"photocard/internal/domain/entity"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/service"
	"photocard/internal/infra/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

// gatedRemote blocks fetches until release is closed and counts them.
type gatedRemote struct {
	service.BlobStore
	release chan struct{}
	calls   atomic.Int32
}

func (g *gatedRemote) Fetch(ctx context.Context, locator string) ([]byte, error) {
	g.calls.Add(1)
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return g.BlobStore.Fetch(ctx, locator)
}

type testFixture struct {
	remote *storage.RemoteStore
	cache  *storage.Cache
	m      *Materializer
}

func createTestMaterializer(t *testing.T, wrap func(service.BlobStore) service.BlobStore, timeout time.Duration) *testFixture {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	remote := storage.NewRemoteStore(memblob.OpenBucket(nil), logger)
	cache := storage.NewCache(memblob.OpenBucket(nil), logger)
	t.Cleanup(func() {
		_ = remote.Close()
		_ = cache.Close()
	})

	var store service.BlobStore = remote
	if wrap != nil {
		store = wrap(remote)
	}

	cfg := &config.Config{Storage: &config.StorageConfig{FetchTimeout: timeout, UploadPrefix: "uploads"}}

	return &testFixture{remote: remote, cache: cache, m: NewMaterializer(store, cache, cfg, logger)}
}

func TestResolve_CacheHitIsFound(t *testing.T) {
	ctx := context.Background()
	fx := createTestMaterializer(t, nil, time.Second)
	require.NoError(t, fx.cache.Write(ctx, "idol.jpg", []byte("cached")))

	f := fx.m.Resolve(ctx, entity.Image{Name: "idol.jpg", Locator: "remote/idol.jpg"})
	assert.Equal(t, Found, f.State())

	data, err := f.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("cached"), data)
}

func TestResolve_MissFetchesAndCaches(t *testing.T) {
	ctx := context.Background()
	fx := createTestMaterializer(t, nil, time.Second)
	_, err := fx.remote.Put(ctx, []byte("remote"), "cards/p1.png")
	require.NoError(t, err)

	f := fx.m.Resolve(ctx, entity.Image{Name: "p1.png", Locator: "cards/p1.png"})
	data, err := f.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("remote"), data)
	assert.Equal(t, Found, f.State())

	cached, ok, err := fx.cache.Read(ctx, "p1.png")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("remote"), cached)

	// second resolve is a cache hit
	assert.Equal(t, Found, fx.m.Resolve(ctx, entity.Image{Name: "p1.png", Locator: "cards/p1.png"}).State())
}

func TestResolve_FetchingUntilSettled(t *testing.T) {
	ctx := context.Background()
	var gate *gatedRemote
	fx := createTestMaterializer(t, func(s service.BlobStore) service.BlobStore {
		gate = &gatedRemote{BlobStore: s, release: make(chan struct{})}

		return gate
	}, time.Second)
	_, err := fx.remote.Put(ctx, []byte("remote"), "cards/p1.png")
	require.NoError(t, err)

	img := entity.Image{Name: "p1.png", Locator: "cards/p1.png"}
	first := fx.m.Resolve(ctx, img)
	second := fx.m.Resolve(ctx, img)
	assert.Equal(t, Fetching, first.State())
	assert.Equal(t, Fetching, second.State())

	close(gate.release)

	var wg sync.WaitGroup
	for _, f := range []*Future{first, second} {
		wg.Go(func() {
			data, err := f.Wait(ctx)
			assert.NoError(t, err)
			assert.Equal(t, []byte("remote"), data)
		})
	}
	wg.Wait()

	assert.LessOrEqual(t, gate.calls.Load(), int32(2))
	assert.GreaterOrEqual(t, gate.calls.Load(), int32(1))
}

func TestResolve_MissingRemoteFails(t *testing.T) {
	ctx := context.Background()
	fx := createTestMaterializer(t, nil, time.Second)

	f := fx.m.Resolve(ctx, entity.Image{Name: "gone.png", Locator: "cards/gone.png"})
	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrStorageNotFound)
	assert.Equal(t, Failed, f.State())
}

func TestResolve_TimeoutFails(t *testing.T) {
	ctx := context.Background()
	fx := createTestMaterializer(t, func(s service.BlobStore) service.BlobStore {
		return &gatedRemote{BlobStore: s, release: make(chan struct{})}
	}, 20*time.Millisecond)

	f := fx.m.Resolve(ctx, entity.Image{Name: "slow.png", Locator: "cards/slow.png"})
	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("future never settled")
	}

	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
}

func TestResolve_WaitHonoursContext(t *testing.T) {
	fx := createTestMaterializer(t, func(s service.BlobStore) service.BlobStore {
		return &gatedRemote{BlobStore: s, release: make(chan struct{})}
	}, time.Second)

	f := fx.m.Resolve(context.Background(), entity.Image{Name: "x.png", Locator: "x.png"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Fetching, f.State())
}

func TestResolve_InvalidImages(t *testing.T) {
	fx := createTestMaterializer(t, nil, time.Second)

	_, err := fx.m.Resolve(context.Background(), entity.Image{}).Wait(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.m.Resolve(context.Background(), entity.Image{Name: "local-only.png"}).Wait(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrStorageNotFound)
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	fx := createTestMaterializer(t, nil, time.Second)

	img, err := fx.m.Upload(ctx, []byte("new"), "dir/listing.png")
	require.NoError(t, err)
	assert.Equal(t, entity.Image{Name: "listing.png", Locator: "uploads/listing.png"}, img)

	data, err := fx.remote.Fetch(ctx, img.Locator)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)

	f := fx.m.Resolve(ctx, img)
	assert.Equal(t, Found, f.State())

	_, err = fx.m.Upload(ctx, nil, "empty.png")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
