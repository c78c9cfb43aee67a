package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ratemyshots/ratemyshots-server/internal/catalog"
	"github.com/ratemyshots/ratemyshots-server/internal/gate"
	"github.com/ratemyshots/ratemyshots-server/internal/store"
)

const testAccessCode = "nyancat123"

// testEnv bundles a fresh store and catalog provider for service tests.
type testEnv struct {
	store   *store.Store
	catalog *catalog.Provider
	logger  *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return &testEnv{
		store:   s,
		catalog: catalog.NewProvider(catalog.Default()),
		logger:  logger,
	}
}

func (e *testEnv) ratingService() *RatingService {
	return NewRatingService(e.store, e.catalog, e.logger)
}

func (e *testEnv) commentService() *CommentService {
	return NewCommentService(e.store, e.catalog, e.logger)
}

func (e *testEnv) analyticsService() *AnalyticsService {
	return NewAnalyticsService(e.store, e.catalog, e.logger)
}

func (e *testEnv) exportService() *ExportService {
	return NewExportService(e.store, e.catalog, e.logger)
}

func (e *testEnv) adminService(t *testing.T) *AdminService {
	t.Helper()
	g, err := gate.New(testAccessCode, e.logger)
	require.NoError(t, err)
	return NewAdminService(e.store, g, e.logger)
}
