package handler

import (
	"encoding/json"
	"testing"
	"time"

	"photocard/internal/domain/entity"
	"photocard/internal/replica"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventView(t *testing.T) {
	card := &entity.Photocard{ID: "p1", IdolRef: entity.NewRef(entity.CollectionIdols, "i1")}
	events := []replica.Event{
		replica.IdolsChanged{Idols: []*entity.Idol{{ID: "i1"}}},
		replica.ArtistsChanged{},
		replica.AlbumsChanged{},
		replica.PhotocardsChanged{Photocards: []*entity.Photocard{card}},
		replica.ListingsChanged{},
		replica.UserChanged{UserID: "u1"},
		replica.FeedStatusChanged{},
	}

	for _, e := range events {
		view, ok := NewEventView(e)
		require.True(t, ok)
		assert.Equal(t, e.Kind().String(), view.Kind)
		_, err := json.Marshal(view.Data)
		assert.NoError(t, err)
	}
}

func TestNewArtistView_KeepsStoredOrder(t *testing.T) {
	karina := &entity.Idol{ID: "i1", Name: "Karina"}
	artist := &entity.Artist{
		ID:         "a1",
		MemberRefs: []entity.Ref{entity.NewRef(entity.CollectionIdols, "i2"), karina.Ref()},
		Members:    []*entity.Idol{karina},
	}

	view := NewArtistView(artist)

	assert.Equal(t, []NamedRef{{ID: "i2"}, {ID: "i1", Name: "Karina"}}, view.Members)
	assert.Empty(t, view.Albums)
}

func TestNewListingView(t *testing.T) {
	sold := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	listing := &entity.Listing{
		ID:           "l1",
		PhotocardRef: entity.NewRef(entity.CollectionPhotocards, "p1"),
		SellerRef:    entity.NewRef(entity.CollectionUsers, "u1"),
		Seller:       &entity.User{ID: "u1", Name: "Mina"},
		BuyerRef:     entity.NewRef(entity.CollectionUsers, "u2"),
		Sold:         true,
		SoldDate:     sold,
	}

	view := NewListingView(listing)

	assert.Equal(t, "p1", view.PhotocardID)
	assert.Nil(t, view.Photocard)
	assert.Equal(t, &NamedRef{ID: "u1", Name: "Mina"}, view.Seller)
	assert.Equal(t, &NamedRef{ID: "u2"}, view.Buyer)
	assert.Equal(t, &sold, view.SoldDate)
	assert.NotNil(t, view.Images)
}

func TestMailbox_KeepsLatestPerKind(t *testing.T) {
	box := newMailbox(replica.InterestAll)

	box.OnEvent(replica.IdolsChanged{Idols: []*entity.Idol{{ID: "old"}}})
	box.OnEvent(replica.UserChanged{UserID: "u1"})
	box.OnEvent(replica.IdolsChanged{Idols: []*entity.Idol{{ID: "new"}}})

	events := box.drain()
	require.Len(t, events, 2)
	assert.Equal(t, "new", events[0].(replica.IdolsChanged).Idols[0].ID)
	assert.Equal(t, replica.KindUser, events[1].Kind())
	assert.Len(t, box.signal, 1)
	assert.Empty(t, box.drain())
}
