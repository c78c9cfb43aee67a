package service

import (
	"log/slog"

	"github.com/ratemyshots/ratemyshots-server/internal/catalog"
	"github.com/ratemyshots/ratemyshots-server/internal/domain"
	"github.com/ratemyshots/ratemyshots-server/internal/stats"
	"github.com/ratemyshots/ratemyshots-server/internal/store"
)

// DefaultTopRatedCount is how many items the top-rated view shows unless
// the caller asks for a different count.
const DefaultTopRatedCount = 3

// AnalyticsService computes aggregate views over the current state. All
// views are recomputed from the store on every call.
type AnalyticsService struct {
	store   *store.Store
	catalog *catalog.Provider
	logger  *slog.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(store *store.Store, catalog *catalog.Provider, logger *slog.Logger) *AnalyticsService {
	return &AnalyticsService{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// ChartData returns the rating distribution as chart points, one per
// rating value.
func (s *AnalyticsService) ChartData() []domain.ChartPoint {
	return stats.ChartData(s.store.Ratings())
}

// TopRated returns the n highest-rated images. n <= 0 uses the default.
func (s *AnalyticsService) TopRated(n int) []domain.RatedItem {
	if n <= 0 {
		n = DefaultTopRatedCount
	}
	return stats.TopRated(s.catalog.Current().Items(), s.store.Ratings(), n)
}

// StyleBreakdown returns the per-style rating aggregation.
func (s *AnalyticsService) StyleBreakdown() []domain.StyleBreakdown {
	return stats.StyleBreakdown(s.catalog.Current().Items(), s.store.Ratings())
}

// Overview summarizes ratings, comments, and catalog size.
func (s *AnalyticsService) Overview() domain.Overview {
	return stats.Overview(s.catalog.Current().Items(), s.store.Ratings(), s.store.Comments())
}
