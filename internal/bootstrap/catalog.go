package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/HealingGarden_Go/internal/catalog"
	"github.com/osse101/HealingGarden_Go/internal/config"
)

// LoadCatalog reads the plant and animal catalog from the configured file, or
// returns the built-in catalog when no file is configured
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		cat := catalog.Default()
		logCatalog(cat, CatalogSourceBuiltin)
		return cat, nil
	}

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	logCatalog(cat, cfg.CatalogPath)
	return cat, nil
}

func logCatalog(cat *catalog.Catalog, source string) {
	slog.Info(LogMsgCatalogLoaded,
		"source", source,
		"plants", len(cat.Plants()),
		"animals", len(cat.Animals()),
		"decorations", len(cat.Decorations()))
}
