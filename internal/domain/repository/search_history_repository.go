package repository

import (
	"context"
	"time"
)

// SearchEntry is one recorded search.
type SearchEntry struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// SearchHistoryRepository is an on-device ordered log of searches per user.
type SearchHistoryRepository interface {
	// Append records text for userID at ts.
	Append(ctx context.Context, text, userID string, ts time.Time) error

	// QueryAll returns the user's searches, oldest first.
	QueryAll(ctx context.Context, userID string) ([]SearchEntry, error)

	// Delete removes every entry of the user with the given text.
	Delete(ctx context.Context, text, userID string) error
}
