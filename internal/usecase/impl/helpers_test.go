package impl

import (
	"log/slog"
	"testing"

	"photocard/internal/domain/entity"
	"photocard/internal/domain/repository"
	"photocard/internal/replica"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func createTestReplica(t *testing.T) *replica.Replica {
	t.Helper()

	return replica.New(replica.Options{}, testLogger())
}

// seed appends one document to a collection of the replica.
func seed(r *replica.Replica, c entity.Collection, id string, rec repository.Record) {
	pos := 0
	switch c {
	case entity.CollectionIdols:
		pos = len(r.Idols())
	case entity.CollectionArtists:
		pos = len(r.Artists())
	case entity.CollectionAlbums:
		pos = len(r.Albums())
	case entity.CollectionPhotocards:
		pos = len(r.Photocards())
	case entity.CollectionListings:
		pos = len(r.Listings())
	case entity.CollectionUsers:
		pos = len(r.Users())
	}

	r.Apply(c, repository.Batch{Changes: []repository.Change{{
		Kind:     repository.ChangeAdded,
		OldIndex: -1,
		NewIndex: pos,
		ID:       id,
		Record:   rec,
	}}})
}

func refList(c entity.Collection, ids ...string) []any {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.NewRef(c, id))
	}

	return out
}

// seedCatalog loads an idol, an artist, an album and a photocard p1.
func seedCatalog(r *replica.Replica) {
	seed(r, entity.CollectionIdols, "i1", repository.Record{"name": "Karina"})
	seed(r, entity.CollectionArtists, "a1", repository.Record{
		"name":    "aespa",
		"members": refList(entity.CollectionIdols, "i1"),
	})
	seed(r, entity.CollectionAlbums, "al1", repository.Record{
		"name":   "Savage",
		"artist": entity.NewRef(entity.CollectionArtists, "a1"),
	})
	seed(r, entity.CollectionPhotocards, "p1", repository.Record{
		"idol":   entity.NewRef(entity.CollectionIdols, "i1"),
		"artist": entity.NewRef(entity.CollectionArtists, "a1"),
		"album":  entity.NewRef(entity.CollectionAlbums, "al1"),
	})
}

// signIn makes userID the current user with the given lists.
func signIn(r *replica.Replica, userID string, all, favourites, wishlist []string) {
	seed(r, entity.CollectionUsers, userID, repository.Record{
		"name":       "Tester",
		"all":        refList(entity.CollectionPhotocards, all...),
		"favourites": refList(entity.CollectionPhotocards, favourites...),
		"wishlist":   refList(entity.CollectionPhotocards, wishlist...),
	})
	r.TrackUser(userID)
}
