// Package di provides dependency injection configuration for the RateMyShots server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/ratemyshots/ratemyshots-server/internal/config"
	"github.com/ratemyshots/ratemyshots-server/internal/di/providers"
	"github.com/ratemyshots/ratemyshots-server/internal/gate"
	"github.com/ratemyshots/ratemyshots-server/internal/logger"
	"github.com/ratemyshots/ratemyshots-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Catalog
	do.Provide(injector, providers.ProvideCatalog)
	do.Provide(injector, providers.ProvideCatalogWatcher)

	// Admin gate
	do.Provide(injector, providers.ProvideGate)

	// Business services
	do.Provide(injector, providers.ProvideRatingService)
	do.Provide(injector, providers.ProvideCommentService)
	do.Provide(injector, providers.ProvideAnalyticsService)
	do.Provide(injector, providers.ProvideAdminService)
	do.Provide(injector, providers.ProvideExportService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services. This triggers lazy initialization
// of everything the server needs before it accepts traffic.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.CatalogHandle](injector)
	_ = do.MustInvoke[*providers.CatalogWatcherHandle](injector)
	_ = do.MustInvoke[*gate.Gate](injector)

	// Business services
	_ = do.MustInvoke[*service.RatingService](injector)
	_ = do.MustInvoke[*service.CommentService](injector)
	_ = do.MustInvoke[*service.AnalyticsService](injector)
	_ = do.MustInvoke[*service.AdminService](injector)
	_ = do.MustInvoke[*service.ExportService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
