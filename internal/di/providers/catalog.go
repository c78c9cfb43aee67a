package providers

import (
	"github.com/samber/do/v2"

	"github.com/ratemyshots/ratemyshots-server/internal/catalog"
	"github.com/ratemyshots/ratemyshots-server/internal/config"
	"github.com/ratemyshots/ratemyshots-server/internal/logger"
)

// CatalogHandle holds the catalog provider used across the application.
type CatalogHandle struct {
	*catalog.Provider
}

// ProvideCatalog provides the image catalog. A configured catalog path
// replaces the built-in set; without one, the defaults are used.
func ProvideCatalog(i do.Injector) (*CatalogHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Catalog.Path == "" {
		log.Info("Using built-in catalog", "images", catalog.Default().Len())
		return &CatalogHandle{Provider: catalog.NewProvider(catalog.Default())}, nil
	}

	c, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	log.Info("Catalog loaded", "path", cfg.Catalog.Path, "images", c.Len())
	return &CatalogHandle{Provider: catalog.NewProvider(c)}, nil
}

// CatalogWatcherHandle wraps the optional catalog file watcher.
type CatalogWatcherHandle struct {
	watcher *catalog.Watcher
}

// Shutdown implements do.Shutdownable.
func (h *CatalogWatcherHandle) Shutdown() error {
	if h.watcher == nil {
		return nil
	}
	return h.watcher.Close()
}

// ProvideCatalogWatcher provides the catalog file watcher. It is active
// only when a catalog file is configured and watching is enabled.
func ProvideCatalogWatcher(i do.Injector) (*CatalogWatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Catalog.Path == "" || !cfg.Catalog.Watch {
		return &CatalogWatcherHandle{}, nil
	}

	handle := do.MustInvoke[*CatalogHandle](i)

	w, err := catalog.NewWatcher(cfg.Catalog.Path, handle.Provider, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Catalog watcher started", "path", cfg.Catalog.Path)
	return &CatalogWatcherHandle{watcher: w}, nil
}
