package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "photocard/internal/delivery/context"
	"photocard/internal/domain/entity"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/repository"
	"photocard/internal/domain/service"
	"photocard/internal/errors"
	"photocard/internal/replica"
	"photocard/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	repo      repository.CatalogRepository
	publisher service.EventPublisher
	replica   *replica.Replica
	logger    *slog.Logger
	now       func() time.Time
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	repo repository.CatalogRepository,
	publisher service.EventPublisher,
	rep *replica.Replica,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		repo:      repo,
		publisher: publisher,
		replica:   rep,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// lookup returns the local copy of ref when it is of type T.
func lookup[T entity.Entity](rep *replica.Replica, ref entity.Ref) (T, bool) {
	var zero T
	if ref.IsZero() {
		return zero, false
	}
	e, ok := rep.Lookup(ref).(T)
	if !ok {
		return zero, false
	}

	return e, true
}

func (s *catalogService) requireUser() (string, error) {
	userID := s.replica.CurrentUserID()
	if userID == "" {
		return "", domainerrors.ErrNoCurrentUser
	}

	return userID, nil
}

func (s *catalogService) requirePhotocard(photocardID string) error {
	if _, ok := lookup[*entity.Photocard](s.replica, entity.NewRef(entity.CollectionPhotocards, photocardID)); !ok {
		return domainerrors.ErrNotFound.WithDetails("photocard " + photocardID)
	}

	return nil
}

// AddIdol creates an idol.
func (s *catalogService) AddIdol(ctx context.Context, input *usecase.AddIdolInput) (*entity.Idol, error) {
	idol := &entity.Idol{Name: input.Name, Birthday: input.Birthday, Image: input.Image}
	if err := s.repo.AddIdol(ctx, idol); err != nil {
		return nil, errors.Wrap(err, "failed to add idol")
	}

	s.log(ctx).Info("Idol added", slog.String("idol_id", idol.ID))

	return idol, nil
}

// AddArtist creates an artist. Members unknown locally stay as references
// and are left out of Members.
func (s *catalogService) AddArtist(ctx context.Context, input *usecase.AddArtistInput) (*entity.Artist, error) {
	artist := &entity.Artist{Name: input.Name, Image: input.Image}
	for _, id := range input.MemberIDs {
		ref := entity.NewRef(entity.CollectionIdols, id)
		artist.MemberRefs = append(artist.MemberRefs, ref)
		if idol, ok := lookup[*entity.Idol](s.replica, ref); ok {
			artist.Members = append(artist.Members, idol)
		}
	}

	if err := s.repo.AddArtist(ctx, artist); err != nil {
		return nil, errors.Wrap(err, "failed to add artist")
	}

	s.log(ctx).Info("Artist added", slog.String("artist_id", artist.ID))

	return artist, nil
}

// AddAlbum creates an album, linked to its artist when one is given.
func (s *catalogService) AddAlbum(ctx context.Context, input *usecase.AddAlbumInput) (*entity.Album, error) {
	album := &entity.Album{Name: input.Name, Image: input.Image}
	if input.ArtistID != "" {
		album.ArtistRef = entity.NewRef(entity.CollectionArtists, input.ArtistID)
		album.Artist, _ = lookup[*entity.Artist](s.replica, album.ArtistRef)
	}

	if err := s.repo.AddAlbum(ctx, album); err != nil {
		return nil, errors.Wrap(err, "failed to add album")
	}

	s.log(ctx).Info("Album added", slog.String("album_id", album.ID))

	return album, nil
}

// AddPhotocard creates a photocard.
func (s *catalogService) AddPhotocard(ctx context.Context, input *usecase.AddPhotocardInput) (*entity.Photocard, error) {
	card := &entity.Photocard{
		IdolRef:   entity.NewRef(entity.CollectionIdols, input.IdolID),
		ArtistRef: entity.NewRef(entity.CollectionArtists, input.ArtistID),
		AlbumRef:  entity.NewRef(entity.CollectionAlbums, input.AlbumID),
		Image:     input.Image,
	}
	card.Idol, _ = lookup[*entity.Idol](s.replica, card.IdolRef)
	card.Artist, _ = lookup[*entity.Artist](s.replica, card.ArtistRef)
	card.Album, _ = lookup[*entity.Album](s.replica, card.AlbumRef)

	if err := s.repo.AddPhotocard(ctx, card); err != nil {
		return nil, errors.Wrap(err, "failed to add photocard")
	}

	s.log(ctx).Info("Photocard added", slog.String("photocard_id", card.ID))

	return card, nil
}

// AddListing puts a card up for sale by the current user and announces it.
func (s *catalogService) AddListing(ctx context.Context, input *usecase.AddListingInput) (*entity.Listing, error) {
	sellerID, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	listing := &entity.Listing{
		PhotocardRef: entity.NewRef(entity.CollectionPhotocards, input.PhotocardID),
		Price:        input.Price,
		SellerRef:    entity.NewRef(entity.CollectionUsers, sellerID),
		ListDate:     s.now().UTC(),
		Description:  input.Description,
		Images:       input.Images,
	}
	listing.Photocard, _ = lookup[*entity.Photocard](s.replica, listing.PhotocardRef)
	listing.Seller = s.replica.CurrentUser()

	if err := s.repo.AddListing(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to add listing")
	}

	s.log(ctx).Info("Listing added",
		slog.String("listing_id", listing.ID),
		slog.String("seller_id", sellerID),
	)

	s.announce(ctx, service.MarketListed, listing)

	return listing, nil
}

// MarkListingSold records the current user as buyer of a listing.
func (s *catalogService) MarkListingSold(ctx context.Context, listingID string) (*entity.Listing, error) {
	buyerID, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	current, ok := lookup[*entity.Listing](s.replica, entity.NewRef(entity.CollectionListings, listingID))
	if !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("listing " + listingID)
	}
	if current.IsSold() {
		return nil, domainerrors.ErrConflict.WithDetails("listing already sold")
	}
	if current.SellerRef.ID == buyerID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cannot buy your own listing")
	}

	// The stored listing is shared with readers; work on a copy.
	listing := *current
	listing.Sold = true
	listing.BuyerRef = entity.NewRef(entity.CollectionUsers, buyerID)
	listing.Buyer = s.replica.CurrentUser()
	listing.SoldDate = s.now().UTC()

	if err := s.repo.MarkListingSold(ctx, &listing); err != nil {
		return nil, errors.Wrap(err, "failed to mark listing sold")
	}

	s.log(ctx).Info("Listing sold",
		slog.String("listing_id", listing.ID),
		slog.String("buyer_id", buyerID),
	)

	s.announce(ctx, service.MarketSold, &listing)

	return &listing, nil
}

// announce publishes market activity. The write already succeeded, so a
// publishing failure is only logged.
func (s *catalogService) announce(ctx context.Context, eventType string, listing *entity.Listing) {
	event := &service.MarketEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        eventType,
		ListingID:   listing.ID,
		PhotocardID: listing.PhotocardRef.ID,
		SellerID:    listing.SellerRef.ID,
		BuyerID:     listing.BuyerRef.ID,
		Price:       listing.Price,
		Description: listing.Description,
		At:          s.now().UTC(),
	}

	if err := s.publisher.PublishMarketEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish market event",
			slog.String("type", eventType),
			slog.String("listing_id", listing.ID),
			slog.Any("error", err),
		)
	}
}

// DeleteIdol deletes an idol with its cascade.
func (s *catalogService) DeleteIdol(ctx context.Context, idolID string) error {
	if idolID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("idol id is required")
	}

	if err := s.repo.DeleteIdol(ctx, idolID); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return domainerrors.ErrNotFound.WithDetails("idol " + idolID)
		}

		return errors.Wrap(err, "failed to delete idol")
	}

	s.log(ctx).Info("Idol deleted", slog.String("idol_id", idolID))

	return nil
}

// AddToCollection adds a card to the current user's collection. A card
// that is owned is no longer wished for.
func (s *catalogService) AddToCollection(ctx context.Context, photocardID string) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}
	if err := s.requirePhotocard(photocardID); err != nil {
		return err
	}

	return s.collect(ctx, userID, photocardID)
}

func (s *catalogService) collect(ctx context.Context, userID, photocardID string) error {
	if err := s.repo.AddToUserList(ctx, userID, repository.ListAll, photocardID); err != nil {
		return errors.Wrap(err, "failed to add to collection")
	}

	if user := s.replica.CurrentUser(); user != nil && user.Wishes(photocardID) {
		if err := s.repo.RemoveFromUserLists(ctx, userID, photocardID, repository.ListWishlist); err != nil {
			return errors.Wrap(err, "failed to remove from wishlist")
		}
	}

	return nil
}

// RemoveFromCollection removes a card from the collection and favourites.
func (s *catalogService) RemoveFromCollection(ctx context.Context, photocardID string) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}

	err = s.repo.RemoveFromUserLists(ctx, userID, photocardID, repository.ListAll, repository.ListFavourites)

	return errors.Wrap(err, "failed to remove from collection")
}

// AddFavourite marks a card as favourite, adding it to the collection.
func (s *catalogService) AddFavourite(ctx context.Context, photocardID string) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}
	if err := s.requirePhotocard(photocardID); err != nil {
		return err
	}

	if err := s.collect(ctx, userID, photocardID); err != nil {
		return err
	}

	err = s.repo.AddToUserList(ctx, userID, repository.ListFavourites, photocardID)

	return errors.Wrap(err, "failed to add favourite")
}

// RemoveFavourite unmarks a card. It stays in the collection.
func (s *catalogService) RemoveFavourite(ctx context.Context, photocardID string) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}

	err = s.repo.RemoveFromUserLists(ctx, userID, photocardID, repository.ListFavourites)

	return errors.Wrap(err, "failed to remove favourite")
}

// AddToWishlist wishes for a card the current user does not own.
func (s *catalogService) AddToWishlist(ctx context.Context, photocardID string) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}
	if err := s.requirePhotocard(photocardID); err != nil {
		return err
	}
	if user := s.replica.CurrentUser(); user != nil && user.Owns(photocardID) {
		return domainerrors.ErrConflict.WithDetails("photocard already in collection")
	}

	err = s.repo.AddToUserList(ctx, userID, repository.ListWishlist, photocardID)

	return errors.Wrap(err, "failed to add to wishlist")
}

// RemoveFromWishlist drops a card from the wishlist.
func (s *catalogService) RemoveFromWishlist(ctx context.Context, photocardID string) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}

	err = s.repo.RemoveFromUserLists(ctx, userID, photocardID, repository.ListWishlist)

	return errors.Wrap(err, "failed to remove from wishlist")
}
