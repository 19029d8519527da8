package replica

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "photocard/internal/domain/errors"
)

type noSnapshots struct{}

func (noSnapshots) Snapshot(Kind) (Event, bool) { return nil, false }

func TestRegistry_RemovalDuringBroadcastFinishesPass(t *testing.T) {
	reg := NewRegistry()
	second := newRecorder(InterestIdol)

	var secondSub Subscription
	reg.Add(ListenerFunc(InterestIdol, func(Event) {
		reg.Remove(secondSub)
	}), noSnapshots{})
	secondSub = reg.Add(second, noSnapshots{})

	assert.Equal(t, 2, reg.Broadcast(IdolsChanged{}))
	assert.Len(t, second.all(), 1)

	assert.Equal(t, 1, reg.Broadcast(IdolsChanged{}))
	assert.Len(t, second.all(), 1)
}

func TestRegistry_DeliversInRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	var order []int
	for i := range 3 {
		reg.Add(ListenerFunc(InterestAll, func(Event) { order = append(order, i) }), noSnapshots{})
	}

	reg.Broadcast(ListingsChanged{})

	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestRegistry_RemoveUnknown(t *testing.T) {
	reg := NewRegistry()

	assert.False(t, reg.Remove(42))
}

func TestParseInterest(t *testing.T) {
	tests := []struct {
		in   string
		want Interest
	}{
		{"", InterestAll},
		{"all", InterestAll},
		{"photocard", InterestPhotocard},
		{"photocard, User", InterestPhotocard | InterestUser},
		{"idol,feed", InterestIdol | InterestFeedStatus},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInterest(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseInterest("photocard,bogus")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestInterest_Kinds(t *testing.T) {
	assert.Equal(t, Kinds(), InterestAll.Kinds())
	assert.Equal(t, []Kind{KindArtist, KindUser}, InterestIn(KindUser, KindArtist).Kinds())
	assert.False(t, InterestPhotocard.Has(KindArtist))
	assert.Equal(t, "all", InterestAll.String())
	assert.Equal(t, "idol,listing", (InterestIdol | InterestListing).String())
}
