package impl

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"photocard/internal/domain/entity"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/repository"
	"photocard/internal/errors"
	"photocard/internal/replica"
	"photocard/internal/usecase"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type searchHistoryService struct {
	repo    repository.SearchHistoryRepository
	replica *replica.Replica
	logger  *slog.Logger
	now     func() time.Time
}

// NewSearchHistoryService creates a new search history service instance
func NewSearchHistoryService(
	repo repository.SearchHistoryRepository,
	rep *replica.Replica,
	logger *slog.Logger,
) usecase.SearchHistoryUsecase {
	return &searchHistoryService{repo: repo, replica: rep, logger: logger, now: time.Now}
}

func (s *searchHistoryService) user() (string, error) {
	userID := s.replica.CurrentUserID()
	if userID == "" {
		return "", domainerrors.ErrNoCurrentUser
	}

	return userID, nil
}

// Record stores text once; searching again moves it to the top.
func (s *searchHistoryService) Record(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domainerrors.ErrValidationFailed.WithDetails("search text is required")
	}

	userID, err := s.user()
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, text, userID); err != nil {
		return errors.Wrap(err, "failed to replace search")
	}

	return errors.Wrap(s.repo.Append(ctx, text, userID, s.now()), "failed to record search")
}

// List returns the searches, most recent first.
func (s *searchHistoryService) List(ctx context.Context) ([]repository.SearchEntry, error) {
	userID, err := s.user()
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.QueryAll(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list searches")
	}
	slices.Reverse(entries)

	return entries, nil
}

// Forget removes a search.
func (s *searchHistoryService) Forget(ctx context.Context, text string) error {
	userID, err := s.user()
	if err != nil {
		return err
	}

	return errors.Wrap(s.repo.Delete(ctx, text, userID), "failed to forget search")
}

// Search ranks every photocard by the closest of its idol, artist and
// album names. Recording is best effort: a failure is logged and the
// results are still returned.
func (s *searchHistoryService) Search(ctx context.Context, text string) ([]*entity.Photocard, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search text is required")
	}

	cards := s.replica.Photocards()
	var names []string
	var owner []int
	for i, p := range cards {
		for _, name := range cardNames(p) {
			names = append(names, name)
			owner = append(owner, i)
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(text, names)
	sort.Stable(ranks)

	seen := make(map[int]bool, len(ranks))
	found := make([]*entity.Photocard, 0, len(ranks))
	for _, r := range ranks {
		i := owner[r.OriginalIndex]
		if seen[i] {
			continue
		}
		seen[i] = true
		found = append(found, cards[i])
	}

	if userID := s.replica.CurrentUserID(); userID != "" {
		if err := s.Record(ctx, text); err != nil {
			s.logger.Warn("Failed to record search",
				slog.String("userID", userID),
				slog.Any("error", err),
			)
		}
	}

	return found, nil
}

func cardNames(p *entity.Photocard) []string {
	names := make([]string, 0, 3)
	if p.Idol != nil && p.Idol.Name != "" {
		names = append(names, p.Idol.Name)
	}
	if p.Artist != nil && p.Artist.Name != "" {
		names = append(names, p.Artist.Name)
	}
	if p.Album != nil && p.Album.Name != "" {
		names = append(names, p.Album.Name)
	}

	return names
}
