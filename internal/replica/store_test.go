package replica

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photocard/internal/domain/entity"
)

func idolIDs(idols []*entity.Idol) []string {
	ids := make([]string, 0, len(idols))
	for _, i := range idols {
		ids = append(ids, i.ID)
	}

	return ids
}

func TestCollection_InsertAt_DuplicateIsNoop(t *testing.T) {
	c := newCollection[*entity.Idol]()

	require.True(t, c.InsertAt(0, &entity.Idol{ID: "i1", Name: "Mina"}))
	assert.False(t, c.InsertAt(0, &entity.Idol{ID: "i1", Name: "Other"}))

	assert.Equal(t, 1, c.Len())
	got, ok := c.LookupByID("i1")
	require.True(t, ok)
	assert.Equal(t, "Mina", got.Name)
}

func TestCollection_InsertAt_ClampsPosition(t *testing.T) {
	c := newCollection[*entity.Idol]()

	c.InsertAt(5, &entity.Idol{ID: "a"})
	c.InsertAt(-3, &entity.Idol{ID: "b"})
	c.InsertAt(1, &entity.Idol{ID: "c"})

	assert.Equal(t, []string{"b", "c", "a"}, idolIDs(c.Snapshot()))
}

func TestCollection_ReplaceAt(t *testing.T) {
	tests := []struct {
		name    string
		oldPos  int
		newPos  int
		replace *entity.Idol
		wantOK  bool
		wantIDs []string
	}{
		{
			name:    "in place",
			oldPos:  1,
			newPos:  1,
			replace: &entity.Idol{ID: "b", Name: "renamed"},
			wantOK:  true,
			wantIDs: []string{"a", "b", "c"},
		},
		{
			name:    "move to front",
			oldPos:  2,
			newPos:  0,
			replace: &entity.Idol{ID: "c"},
			wantOK:  true,
			wantIDs: []string{"c", "a", "b"},
		},
		{
			name:    "old position out of bounds",
			oldPos:  3,
			newPos:  0,
			replace: &entity.Idol{ID: "c"},
			wantOK:  false,
			wantIDs: []string{"a", "b", "c"},
		},
		{
			name:    "stale position falls back to id",
			oldPos:  0,
			newPos:  2,
			replace: &entity.Idol{ID: "b"},
			wantOK:  true,
			wantIDs: []string{"a", "c", "b"},
		},
		{
			name:    "unknown id",
			oldPos:  0,
			newPos:  0,
			replace: &entity.Idol{ID: "z"},
			wantOK:  false,
			wantIDs: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCollection[*entity.Idol]()
			for i, id := range []string{"a", "b", "c"} {
				c.InsertAt(i, &entity.Idol{ID: id})
			}

			assert.Equal(t, tt.wantOK, c.ReplaceAt(tt.oldPos, tt.newPos, tt.replace))
			assert.Equal(t, tt.wantIDs, idolIDs(c.Snapshot()))
			assert.Equal(t, 3, c.Len())
		})
	}
}

func TestCollection_RemoveAt(t *testing.T) {
	c := newCollection[*entity.Idol]()
	for i, id := range []string{"a", "b", "c"} {
		c.InsertAt(i, &entity.Idol{ID: id})
	}

	removed, ok := c.RemoveAt(1, "b")
	require.True(t, ok)
	assert.Equal(t, "b", removed.ID)

	_, ok = c.RemoveAt(7, "c")
	assert.False(t, ok)

	removed, ok = c.RemoveAt(0, "c")
	require.True(t, ok)
	assert.Equal(t, "c", removed.ID)

	assert.Equal(t, []string{"a"}, idolIDs(c.Snapshot()))
}

func TestCollection_SnapshotIsACopy(t *testing.T) {
	c := newCollection[*entity.Idol]()
	c.InsertAt(0, &entity.Idol{ID: "a"})

	snap := c.Snapshot()
	c.InsertAt(1, &entity.Idol{ID: "b"})

	assert.Len(t, snap, 1)
	assert.Equal(t, 2, c.Len())
}

func TestEntityStore_Lookup(t *testing.T) {
	s := NewEntityStore()
	s.insertAt(0, &entity.Idol{ID: "i1"})
	s.insertAt(0, &entity.User{ID: "u1"})

	assert.NotNil(t, s.Lookup(entity.NewRef(entity.CollectionIdols, "i1")))
	assert.NotNil(t, s.Lookup(entity.NewRef(entity.CollectionUsers, "u1")))
	assert.Nil(t, s.Lookup(entity.NewRef(entity.CollectionArtists, "i1")))
	assert.Nil(t, s.Lookup(entity.Ref{}))
}
