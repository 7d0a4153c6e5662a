package mock

import (
	"context"

	travel "github.com/Vnwedo/Travel-Recommendation"
)

var _ travel.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of travel.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, raw string) (travel.ResultView, error)
}

func (s *SearchService) Search(ctx context.Context, raw string) (travel.ResultView, error) {
	return s.SearchFn(ctx, raw)
}
