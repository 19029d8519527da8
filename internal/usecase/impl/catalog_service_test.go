package impl

import (
	"context"
	"testing"
	"time"

	"photocard/internal/domain/entity"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/repository"
	"photocard/internal/domain/service"
	mockRepo "photocard/internal/mocks/repository"
	mockService "photocard/internal/mocks/service"
	"photocard/internal/replica"
	"photocard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	repo      *mockRepo.MockCatalogRepository
	publisher *mockService.MockEventPublisher
	replica   *replica.Replica
	service   *catalogService
}

var fixedNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func createTestCatalogService(t *testing.T) *catalogFixture {
	t.Helper()

	f := &catalogFixture{
		repo:      mockRepo.NewMockCatalogRepository(t),
		publisher: mockService.NewMockEventPublisher(t),
		replica:   createTestReplica(t),
	}
	svc, ok := NewCatalogService(f.repo, f.publisher, f.replica, testLogger()).(*catalogService)
	require.True(t, ok)
	svc.now = func() time.Time { return fixedNow }
	f.service = svc

	return f
}

func TestCatalogService_AddIdol_ReturnsStoreID(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.repo.EXPECT().
		AddIdol(ctx, mock.AnythingOfType("*entity.Idol")).
		RunAndReturn(func(_ context.Context, idol *entity.Idol) error {
			idol.ID = "i9"

			return nil
		})

	idol, err := f.service.AddIdol(ctx, &usecase.AddIdolInput{Name: "Giselle"})
	require.NoError(t, err)
	assert.Equal(t, "i9", idol.ID)
	assert.Equal(t, "Giselle", idol.Name)
}

func TestCatalogService_AddArtist_ResolvesKnownMembers(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	seedCatalog(f.replica)

	f.repo.EXPECT().AddArtist(ctx, mock.Anything).Return(nil)

	artist, err := f.service.AddArtist(ctx, &usecase.AddArtistInput{Name: "GOT the beat", MemberIDs: []string{"i1", "ghost"}})
	require.NoError(t, err)
	assert.Len(t, artist.MemberRefs, 2)
	require.Len(t, artist.Members, 1)
	assert.Equal(t, "Karina", artist.Members[0].Name)
}

func TestCatalogService_AddPhotocard_ResolvesReferences(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	seedCatalog(f.replica)

	f.repo.EXPECT().
		AddPhotocard(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, card *entity.Photocard) error {
			card.ID = "p2"

			return nil
		})

	card, err := f.service.AddPhotocard(ctx, &usecase.AddPhotocardInput{
		IdolID: "i1", ArtistID: "a1", AlbumID: "missing",
		Image: entity.Image{Name: "p2.png", Locator: "cards/p2.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, "p2", card.ID)
	require.NotNil(t, card.Idol)
	require.NotNil(t, card.Artist)
	assert.Nil(t, card.Album)
	assert.Equal(t, entity.NewRef(entity.CollectionAlbums, "missing"), card.AlbumRef)
}

func TestCatalogService_AddAlbum_WithoutArtist(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.repo.EXPECT().
		AddAlbum(ctx, mock.MatchedBy(func(a *entity.Album) bool { return a.ArtistRef.IsZero() })).
		Return(nil)

	album, err := f.service.AddAlbum(ctx, &usecase.AddAlbumInput{Name: "Single"})
	require.NoError(t, err)
	assert.Nil(t, album.Artist)
}

func TestCatalogService_AddListing(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	seedCatalog(f.replica)
	signIn(f.replica, "seller", []string{"p1"}, nil, nil)

	f.repo.EXPECT().
		AddListing(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, l *entity.Listing) error {
			l.ID = "l1"

			return nil
		})
	f.publisher.EXPECT().
		PublishMarketEvent(ctx, &service.MarketEvent{
			Type:        service.MarketListed,
			ListingID:   "l1",
			PhotocardID: "p1",
			SellerID:    "seller",
			Price:       20,
			Description: "near mint",
			At:          fixedNow,
		}).
		Return(nil)

	listing, err := f.service.AddListing(ctx, &usecase.AddListingInput{PhotocardID: "p1", Price: 20, Description: "near mint"})
	require.NoError(t, err)
	assert.Equal(t, "l1", listing.ID)
	assert.Equal(t, fixedNow, listing.ListDate)
	require.NotNil(t, listing.Photocard)
	require.NotNil(t, listing.Seller)
	assert.Equal(t, "seller", listing.Seller.ID)
}

func TestCatalogService_AddListing_PublishFailureIsNotFatal(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	signIn(f.replica, "seller", nil, nil, nil)

	f.repo.EXPECT().AddListing(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishMarketEvent(ctx, mock.Anything).Return(assert.AnError)

	_, err := f.service.AddListing(ctx, &usecase.AddListingInput{PhotocardID: "p1", Price: 5})
	assert.NoError(t, err)
}

func TestCatalogService_RequiresCurrentUser(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	_, err := f.service.AddListing(ctx, &usecase.AddListingInput{PhotocardID: "p1"})
	assert.ErrorIs(t, err, domainerrors.ErrNoCurrentUser)
	_, err = f.service.MarkListingSold(ctx, "l1")
	assert.ErrorIs(t, err, domainerrors.ErrNoCurrentUser)
	assert.ErrorIs(t, f.service.AddToCollection(ctx, "p1"), domainerrors.ErrNoCurrentUser)
	assert.ErrorIs(t, f.service.RemoveFromWishlist(ctx, "p1"), domainerrors.ErrNoCurrentUser)
}

func TestCatalogService_MarkListingSold(t *testing.T) {
	seedListing := func(r *replica.Replica, sold bool) {
		seed(r, entity.CollectionListings, "l1", repository.Record{
			"photocard": entity.NewRef(entity.CollectionPhotocards, "p1"),
			"price":     12.0,
			"seller":    entity.NewRef(entity.CollectionUsers, "seller"),
			"sold":      sold,
		})
	}

	t.Run("success", func(t *testing.T) {
		f := createTestCatalogService(t)
		ctx := context.Background()
		seedListing(f.replica, false)
		signIn(f.replica, "buyer", nil, nil, nil)

		f.repo.EXPECT().
			MarkListingSold(ctx, mock.MatchedBy(func(l *entity.Listing) bool {
				return l.ID == "l1" && l.Sold && l.BuyerRef.ID == "buyer" && l.SoldDate.Equal(fixedNow)
			})).
			Return(nil)
		f.publisher.EXPECT().
			PublishMarketEvent(ctx, mock.MatchedBy(func(e *service.MarketEvent) bool {
				return e.Type == service.MarketSold && e.SellerID == "seller" && e.BuyerID == "buyer"
			})).
			Return(nil)

		listing, err := f.service.MarkListingSold(ctx, "l1")
		require.NoError(t, err)
		assert.True(t, listing.IsSold())

		stored, ok := f.replica.Lookup(entity.NewRef(entity.CollectionListings, "l1")).(*entity.Listing)
		require.True(t, ok)
		assert.False(t, stored.Sold, "the replica copy changes only through the feed")
	})

	t.Run("unknown listing", func(t *testing.T) {
		f := createTestCatalogService(t)
		signIn(f.replica, "buyer", nil, nil, nil)

		_, err := f.service.MarkListingSold(context.Background(), "nope")
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("already sold", func(t *testing.T) {
		f := createTestCatalogService(t)
		seedListing(f.replica, true)
		signIn(f.replica, "buyer", nil, nil, nil)

		_, err := f.service.MarkListingSold(context.Background(), "l1")
		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})

	t.Run("own listing", func(t *testing.T) {
		f := createTestCatalogService(t)
		seedListing(f.replica, false)
		signIn(f.replica, "seller", nil, nil, nil)

		_, err := f.service.MarkListingSold(context.Background(), "l1")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCatalogService_DeleteIdol(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.repo.EXPECT().DeleteIdol(ctx, "i1").Return(nil).Once()
	f.repo.EXPECT().DeleteIdol(ctx, "gone").Return(repository.ErrDocumentNotFound).Once()

	require.NoError(t, f.service.DeleteIdol(ctx, "i1"))
	assert.ErrorIs(t, f.service.DeleteIdol(ctx, "gone"), domainerrors.ErrNotFound)
	assert.ErrorIs(t, f.service.DeleteIdol(ctx, ""), domainerrors.ErrValidationFailed)
}

func TestCatalogService_AddFavourite_AddsToCollectionAndLeavesWishlist(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	seedCatalog(f.replica)
	signIn(f.replica, "u1", nil, nil, []string{"p1"})

	f.repo.EXPECT().AddToUserList(ctx, "u1", repository.ListAll, "p1").Return(nil)
	f.repo.EXPECT().RemoveFromUserLists(ctx, "u1", "p1", []repository.UserList{repository.ListWishlist}).Return(nil)
	f.repo.EXPECT().AddToUserList(ctx, "u1", repository.ListFavourites, "p1").Return(nil)

	require.NoError(t, f.service.AddFavourite(ctx, "p1"))
}

func TestCatalogService_RemoveFromCollection_CascadesFavourites(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	signIn(f.replica, "u1", []string{"p1"}, []string{"p1"}, nil)

	f.repo.EXPECT().
		RemoveFromUserLists(ctx, "u1", "p1", []repository.UserList{repository.ListAll, repository.ListFavourites}).
		Return(nil)

	require.NoError(t, f.service.RemoveFromCollection(ctx, "p1"))
}

func TestCatalogService_RemoveFavourite_KeepsCollection(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	signIn(f.replica, "u1", []string{"p1"}, []string{"p1"}, nil)

	f.repo.EXPECT().
		RemoveFromUserLists(ctx, "u1", "p1", []repository.UserList{repository.ListFavourites}).
		Return(nil)

	require.NoError(t, f.service.RemoveFavourite(ctx, "p1"))
}

func TestCatalogService_Wishlist(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	seedCatalog(f.replica)
	seed(f.replica, entity.CollectionPhotocards, "p2", repository.Record{})
	signIn(f.replica, "u1", []string{"p1"}, nil, nil)

	assert.ErrorIs(t, f.service.AddToWishlist(ctx, "p1"), domainerrors.ErrConflict)
	assert.ErrorIs(t, f.service.AddToWishlist(ctx, "ghost"), domainerrors.ErrNotFound)

	f.repo.EXPECT().AddToUserList(ctx, "u1", repository.ListWishlist, "p2").Return(nil)
	f.repo.EXPECT().RemoveFromUserLists(ctx, "u1", "p2", []repository.UserList{repository.ListWishlist}).Return(nil)

	require.NoError(t, f.service.AddToWishlist(ctx, "p2"))
	require.NoError(t, f.service.RemoveFromWishlist(ctx, "p2"))
}

func TestCatalogService_AddToCollection_PropagatesRepositoryError(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	seedCatalog(f.replica)
	signIn(f.replica, "u1", nil, nil, nil)

	f.repo.EXPECT().AddToUserList(ctx, "u1", repository.ListAll, "p1").Return(repository.ErrDocumentNotFound)

	err := f.service.AddToCollection(ctx, "p1")
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
}
