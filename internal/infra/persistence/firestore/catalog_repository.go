package firestore

import (
	"context"
	"log/slog"

	"photocard/internal/domain/entity"
	"photocard/internal/domain/repository"
	"photocard/internal/errors"
	"photocard/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(client *firestore.Client, logger *slog.Logger) repository.CatalogRepository {
	return &catalogRepository{
		client: client,
		logger: logger,
	}
}

func (repo *catalogRepository) collection(c entity.Collection) *firestore.CollectionRef {
	return repo.client.Collection(c.String())
}

// doc returns the document a reference points at, nil for the zero Ref.
func (repo *catalogRepository) doc(ref entity.Ref) *firestore.DocumentRef {
	if ref.IsZero() {
		return nil
	}

	return repo.collection(ref.Collection).Doc(ref.ID)
}

func (repo *catalogRepository) docs(refs []entity.Ref) []*firestore.DocumentRef {
	out := make([]*firestore.DocumentRef, 0, len(refs))
	for _, ref := range refs {
		if d := repo.doc(ref); d != nil {
			out = append(out, d)
		}
	}

	return out
}

// AddIdol creates the idol document.
func (repo *catalogRepository) AddIdol(ctx context.Context, idol *entity.Idol) error {
	ref, _, err := repo.collection(entity.CollectionIdols).Add(ctx, model.IdolDocument{
		Name:      idol.Name,
		Birthday:  idol.Birthday,
		ImageName: idol.Image.Name,
		ImageURL:  idol.Image.Locator,
	})
	if err != nil {
		return errors.Wrap(err, "failed to add idol")
	}
	idol.ID = ref.ID

	return nil
}

// AddArtist creates the artist document.
func (repo *catalogRepository) AddArtist(ctx context.Context, artist *entity.Artist) error {
	ref, _, err := repo.collection(entity.CollectionArtists).Add(ctx, model.ArtistDocument{
		Name:      artist.Name,
		ImageName: artist.Image.Name,
		ImageURL:  artist.Image.Locator,
		Members:   repo.docs(artist.MemberRefs),
		Albums:    repo.docs(artist.AlbumRefs),
	})
	if err != nil {
		return errors.Wrap(err, "failed to add artist")
	}
	artist.ID = ref.ID

	return nil
}

// AddAlbum creates the album and links it from its artist in one transaction.
func (repo *catalogRepository) AddAlbum(ctx context.Context, album *entity.Album) error {
	albumRef := repo.collection(entity.CollectionAlbums).NewDoc()
	artistRef := repo.doc(album.ArtistRef)

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(albumRef, model.AlbumDocument{
			Name:      album.Name,
			Artist:    artistRef,
			ImageName: album.Image.Name,
			ImageURL:  album.Image.Locator,
		}); err != nil {
			return errors.WithStack(err)
		}
		if artistRef == nil {
			return nil
		}

		return errors.WithStack(tx.Update(artistRef, []firestore.Update{
			{Path: "albums", Value: firestore.ArrayUnion(albumRef)},
		}))
	})
	if err != nil {
		return mapNotFound(err, "failed to add album")
	}
	album.ID = albumRef.ID

	return nil
}

// AddPhotocard creates the photocard document.
func (repo *catalogRepository) AddPhotocard(ctx context.Context, card *entity.Photocard) error {
	ref, _, err := repo.collection(entity.CollectionPhotocards).Add(ctx, model.PhotocardDocument{
		Idol:      repo.doc(card.IdolRef),
		Artist:    repo.doc(card.ArtistRef),
		Album:     repo.doc(card.AlbumRef),
		ImageName: card.Image.Name,
		ImageURL:  card.Image.Locator,
	})
	if err != nil {
		return errors.Wrap(err, "failed to add photocard")
	}
	card.ID = ref.ID

	return nil
}

// AddListing creates the listing document.
func (repo *catalogRepository) AddListing(ctx context.Context, listing *entity.Listing) error {
	images := make([]model.ListingImage, 0, len(listing.Images))
	for _, img := range listing.Images {
		images = append(images, model.ListingImage{Name: img.Name, URL: img.Locator})
	}

	ref, _, err := repo.collection(entity.CollectionListings).Add(ctx, model.ListingDocument{
		Photocard:   repo.doc(listing.PhotocardRef),
		Price:       listing.Price,
		Seller:      repo.doc(listing.SellerRef),
		ListDate:    listing.ListDate,
		Description: listing.Description,
		Images:      images,
	})
	if err != nil {
		return errors.Wrap(err, "failed to add listing")
	}
	listing.ID = ref.ID

	return nil
}

// MarkListingSold records the sale on the listing document.
func (repo *catalogRepository) MarkListingSold(ctx context.Context, listing *entity.Listing) error {
	_, err := repo.collection(entity.CollectionListings).Doc(listing.ID).Update(ctx, []firestore.Update{
		{Path: "sold", Value: true},
		{Path: "buyer", Value: repo.doc(listing.BuyerRef)},
		{Path: "soldDate", Value: listing.SoldDate},
	})

	return mapNotFound(err, "failed to mark listing sold")
}

// DeleteIdol cascades the deletion to artists and photocards.
func (repo *catalogRepository) DeleteIdol(ctx context.Context, idolID string) error {
	idolRef := repo.collection(entity.CollectionIdols).Doc(idolID)
	artistsQuery := repo.collection(entity.CollectionArtists).Where("members", "array-contains", idolRef)
	cardsQuery := repo.collection(entity.CollectionPhotocards).Where("idol", "==", idolRef)

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(idolRef); err != nil {
			return errors.WithStack(err)
		}
		artists, err := tx.Documents(artistsQuery).GetAll()
		if err != nil {
			return errors.Wrap(err, "query artists")
		}
		cards, err := tx.Documents(cardsQuery).GetAll()
		if err != nil {
			return errors.Wrap(err, "query photocards")
		}

		for _, artist := range artists {
			if err := tx.Update(artist.Ref, []firestore.Update{
				{Path: "members", Value: firestore.ArrayRemove(idolRef)},
			}); err != nil {
				return errors.WithStack(err)
			}
		}
		for _, card := range cards {
			if err := tx.Delete(card.Ref); err != nil {
				return errors.WithStack(err)
			}
		}

		return errors.WithStack(tx.Delete(idolRef))
	})
	if err != nil {
		return mapNotFound(err, "failed to delete idol")
	}

	repo.logger.Info("idol deleted",
		slog.String("idolID", idolID),
	)

	return nil
}

// CreateUser writes the user document unless it already exists.
func (repo *catalogRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := repo.collection(entity.CollectionUsers).Doc(user.ID).Create(ctx, model.UserDocument{
		Name:       user.Name,
		Email:      user.Email,
		Anonymous:  user.Anonymous,
		ImageName:  user.Image.Name,
		ImageURL:   user.Image.Locator,
		All:        repo.docs(user.AllRefs),
		Favourites: repo.docs(user.FavouriteRefs),
		Wishlist:   repo.docs(user.WishlistRefs),
	})
	if status.Code(errors.Cause(err)) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

// AddToUserList appends the photocard to one list of the user.
func (repo *catalogRepository) AddToUserList(ctx context.Context, userID string, list repository.UserList, photocardID string) error {
	card := repo.collection(entity.CollectionPhotocards).Doc(photocardID)
	_, err := repo.collection(entity.CollectionUsers).Doc(userID).Update(ctx, []firestore.Update{
		{Path: string(list), Value: firestore.ArrayUnion(card)},
	})

	return mapNotFound(err, "failed to add to "+string(list))
}

// RemoveFromUserLists removes the photocard from the given lists at once.
func (repo *catalogRepository) RemoveFromUserLists(ctx context.Context, userID, photocardID string, lists ...repository.UserList) error {
	if len(lists) == 0 {
		return nil
	}
	card := repo.collection(entity.CollectionPhotocards).Doc(photocardID)
	updates := make([]firestore.Update, 0, len(lists))
	for _, list := range lists {
		updates = append(updates, firestore.Update{Path: string(list), Value: firestore.ArrayRemove(card)})
	}
	_, err := repo.collection(entity.CollectionUsers).Doc(userID).Update(ctx, updates)

	return mapNotFound(err, "failed to remove from user lists")
}

// mapNotFound converts gRPC NotFound into repository.ErrDocumentNotFound.
func mapNotFound(err error, message string) error {
	if err == nil {
		return nil
	}
	if status.Code(errors.Cause(err)) == codes.NotFound {
		return repository.ErrDocumentNotFound
	}

	return errors.Wrap(err, message)
}
