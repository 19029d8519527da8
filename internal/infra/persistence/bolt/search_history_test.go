package bolt

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHistory(t *testing.T, limit int) *SearchHistory {
	t.Helper()

	h, err := OpenSearchHistory(filepath.Join(t.TempDir(), "db", "history.db"), limit, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	return h
}

func texts(t *testing.T, h *SearchHistory, userID string) []string {
	t.Helper()

	entries, err := h.QueryAll(context.Background(), userID)
	require.NoError(t, err)

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Text)
	}

	return out
}

func TestSearchHistory_OrderedByTimestamp(t *testing.T) {
	ctx := context.Background()
	h := createTestHistory(t, 0)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, h.Append(ctx, "second", "u1", base.Add(time.Minute)))
	require.NoError(t, h.Append(ctx, "first", "u1", base))
	require.NoError(t, h.Append(ctx, "third", "u1", base.Add(2*time.Minute)))

	assert.Equal(t, []string{"first", "second", "third"}, texts(t, h, "u1"))

	entries, err := h.QueryAll(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, entries[0].Timestamp.Equal(base))
}

func TestSearchHistory_PerUser(t *testing.T) {
	ctx := context.Background()
	h := createTestHistory(t, 0)
	now := time.Now()

	require.NoError(t, h.Append(ctx, "jisoo", "u1", now))
	require.NoError(t, h.Append(ctx, "karina", "u2", now))

	assert.Equal(t, []string{"jisoo"}, texts(t, h, "u1"))
	assert.Equal(t, []string{"karina"}, texts(t, h, "u2"))
	assert.Empty(t, texts(t, h, "nobody"))
}

func TestSearchHistory_DeleteRemovesEveryMatch(t *testing.T) {
	ctx := context.Background()
	h := createTestHistory(t, 0)
	now := time.Now()

	require.NoError(t, h.Append(ctx, "aespa", "u1", now))
	require.NoError(t, h.Append(ctx, "ive", "u1", now.Add(time.Second)))
	require.NoError(t, h.Append(ctx, "aespa", "u1", now.Add(2*time.Second)))

	require.NoError(t, h.Delete(ctx, "aespa", "u1"))
	assert.Equal(t, []string{"ive"}, texts(t, h, "u1"))

	require.NoError(t, h.Delete(ctx, "missing", "u1"))
	require.NoError(t, h.Delete(ctx, "ive", "nobody"))
}

func TestSearchHistory_EvictsOldest(t *testing.T) {
	ctx := context.Background()
	h := createTestHistory(t, 2)
	now := time.Now()

	require.NoError(t, h.Append(ctx, "a", "u1", now))
	require.NoError(t, h.Append(ctx, "b", "u1", now.Add(time.Second)))
	require.NoError(t, h.Append(ctx, "c", "u1", now.Add(2*time.Second)))

	assert.Equal(t, []string{"b", "c"}, texts(t, h, "u1"))
}

func TestSearchHistory_RequiresUser(t *testing.T) {
	h := createTestHistory(t, 0)

	assert.Error(t, h.Append(context.Background(), "x", "", time.Now()))
}
