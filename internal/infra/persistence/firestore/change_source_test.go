package firestore

import (
	"testing"
	"time"

	"photocard/internal/domain/entity"
	"photocard/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docRef(collection, id string) *firestore.DocumentRef {
	return &firestore.DocumentRef{Parent: &firestore.CollectionRef{ID: collection}, ID: id}
}

func TestToRecord_ConvertsDocumentReferences(t *testing.T) {
	listDate := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	data := map[string]any{
		"photocard": docRef("photocards", "p1"),
		"seller":    docRef("users", "u1"),
		"price":     int64(25),
		"listDate":  listDate,
		"images": []any{
			map[string]any{"name": "front.jpg", "url": "images/front.jpg"},
		},
		"members": []any{docRef("idols", "i1"), docRef("idols", "i2")},
		"buyer":   nil,
	}

	rec := toRecord(data)

	assert.Equal(t, entity.NewRef(entity.CollectionPhotocards, "p1"), rec.Ref("photocard"))
	assert.Equal(t, entity.NewRef(entity.CollectionUsers, "u1"), rec.Ref("seller"))
	assert.True(t, rec.Ref("buyer").IsZero())
	assert.InDelta(t, 25.0, rec.Float("price"), 0.001)
	assert.Equal(t, listDate, rec.Time("listDate"))
	assert.Equal(t, []entity.Ref{
		entity.NewRef(entity.CollectionIdols, "i1"),
		entity.NewRef(entity.CollectionIdols, "i2"),
	}, rec.Refs("members"))
	assert.Equal(t, []entity.Image{{Name: "front.jpg", Locator: "images/front.jpg"}}, rec.Images("images"))
}

func TestToChange_MapsKinds(t *testing.T) {
	tests := []struct {
		kind firestore.DocumentChangeKind
		want repository.ChangeKind
	}{
		{firestore.DocumentAdded, repository.ChangeAdded},
		{firestore.DocumentModified, repository.ChangeModified},
		{firestore.DocumentRemoved, repository.ChangeRemoved},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			ch := toChange(tt.kind, 1, 2, "doc", map[string]any{"name": "x"})
			assert.Equal(t, tt.want, ch.Kind)
			assert.Equal(t, 1, ch.OldIndex)
			assert.Equal(t, 2, ch.NewIndex)
			assert.Equal(t, "doc", ch.ID)
			assert.Equal(t, "x", ch.Record.String("name"))
		})
	}
}

func TestToRecord_Nil(t *testing.T) {
	require.Nil(t, toRecord(nil))
	assert.True(t, toRef(nil).IsZero())
}
