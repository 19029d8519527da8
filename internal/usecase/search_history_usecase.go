package usecase

import (
	"context"

	"photocard/internal/domain/entity"
	"photocard/internal/domain/repository"
)

// SearchHistoryUsecase searches the catalogue and keeps the current
// user's recent searches.
type SearchHistoryUsecase interface {
	// Search returns the photocards whose idol, artist or album name
	// fuzzily matches text, best match first. A signed-in user's search
	// is recorded.
	Search(ctx context.Context, text string) ([]*entity.Photocard, error)

	// Record stores text as the most recent search.
	Record(ctx context.Context, text string) error

	// List returns the searches, most recent first.
	List(ctx context.Context) ([]repository.SearchEntry, error)

	Forget(ctx context.Context, text string) error
}
