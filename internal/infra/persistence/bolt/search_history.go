// Package bolt keeps device-local state in a bbolt file.
package bolt

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"photocard/config"
	"photocard/internal/domain/constants"
	"photocard/internal/domain/repository"
	"photocard/internal/errors"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/fx"
)

const openTimeout = time.Second

var bucketSearches = []byte("searches")

// SearchHistory implements repository.SearchHistoryRepository. Each user
// gets a nested bucket whose keys sort by timestamp.
type SearchHistory struct {
	db     *bolt.DB
	limit  int
	logger *slog.Logger
}

// OpenSearchHistory opens or creates the database at path. limit bounds the
// entries kept per user; the oldest are evicted first.
func OpenSearchHistory(path string, limit int, logger *slog.Logger) (*SearchHistory, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create search history directory")
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bolt db %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSearches)

		return err
	})
	if err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to create searches bucket")
	}

	return &SearchHistory{db: db, limit: limit, logger: logger}, nil
}

// SearchHistoryParams holds dependencies for the search history, injected by Fx
type SearchHistoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSearchHistoryRepository opens the configured database and closes it on stop.
func NewSearchHistoryRepository(params SearchHistoryParams) (repository.SearchHistoryRepository, error) {
	path := "data/search_history.db"
	if params.Config.SearchHistory != nil && params.Config.SearchHistory.Path != "" {
		path = params.Config.SearchHistory.Path
	}

	history, err := OpenSearchHistory(path, constants.MaxSearchHistory, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return history.Close()
		},
	})

	return history, nil
}

// Append records text for userID at ts.
func (h *SearchHistory) Append(_ context.Context, text, userID string, ts time.Time) error {
	if userID == "" {
		return errors.New("search history requires a user")
	}

	value, err := json.Marshal(repository.SearchEntry{Text: text, Timestamp: ts.UTC()})
	if err != nil {
		return errors.Wrap(err, "failed to encode search entry")
	}

	err = h.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket(bucketSearches).CreateBucketIfNotExists([]byte(userID))
		if err != nil {
			return err
		}
		if err := b.Put(entryKey(ts), value); err != nil {
			return err
		}

		return h.evict(b)
	})

	return errors.Wrap(err, "failed to append search")
}

// QueryAll returns the user's searches, oldest first.
func (h *SearchHistory) QueryAll(_ context.Context, userID string) ([]repository.SearchEntry, error) {
	entries := []repository.SearchEntry{}

	err := h.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSearches).Bucket([]byte(userID))
		if b == nil {
			return nil
		}

		return b.ForEach(func(k, v []byte) error {
			var entry repository.SearchEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				h.logger.Warn("Skipping corrupt search entry",
					slog.String("user_id", userID),
					slog.Any("error", err),
				)

				return nil
			}
			entries = append(entries, entry)

			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read search history")
	}

	return entries, nil
}

// Delete removes every entry of the user with the given text.
func (h *SearchHistory) Delete(_ context.Context, text, userID string) error {
	err := h.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSearches).Bucket([]byte(userID))
		if b == nil {
			return nil
		}

		var doomed [][]byte
		err := b.ForEach(func(k, v []byte) error {
			var entry repository.SearchEntry
			if json.Unmarshal(v, &entry) == nil && entry.Text == text {
				doomed = append(doomed, bytes.Clone(k))
			}

			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range doomed {
			if err := b.Delete(k); err != nil {
				return err
			}
		}

		return nil
	})

	return errors.Wrap(err, "failed to delete search")
}

// Close closes the database file.
func (h *SearchHistory) Close() error {
	return errors.WithStack(h.db.Close())
}

// evict drops the oldest entries above the limit.
func (h *SearchHistory) evict(b *bolt.Bucket) error {
	if h.limit <= 0 {
		return nil
	}

	var keys [][]byte
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		keys = append(keys, bytes.Clone(k))
	}
	if len(keys) <= h.limit {
		return nil
	}

	doomed := keys[:len(keys)-h.limit]
	for _, k := range doomed {
		if err := b.Delete(k); err != nil {
			return err
		}
	}

	return nil
}

// entryKey sorts by timestamp; the random suffix keeps equal timestamps apart.
func entryKey(ts time.Time) []byte {
	id := uuid.New()
	key := make([]byte, 8, 8+len(id))
	binary.BigEndian.PutUint64(key, uint64(ts.UnixNano()))

	return append(key, id[:]...)
}
