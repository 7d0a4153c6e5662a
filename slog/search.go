// Package slog provides logging decorators for the travel domain
// interfaces, built on the standard library structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	travel "github.com/Vnwedo/Travel-Recommendation"
)

// Ensure LoggingSearchService implements travel.SearchService.
var _ travel.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with per-search logging.
type LoggingSearchService struct {
	next   travel.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next travel.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the search outcome.
func (s *LoggingSearchService) Search(ctx context.Context, raw string) (view travel.ResultView, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", raw,
			"category", view.Category.String(),
			"results", len(view.Cards),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, raw)
}
