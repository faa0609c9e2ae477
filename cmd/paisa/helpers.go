package main

import (
	"github.com/spf13/viper"

	"github.com/paisa-ai/paisa/internal/catalog"
	"github.com/paisa-ai/paisa/internal/classify"
	"github.com/paisa-ai/paisa/internal/common"
	"github.com/paisa-ai/paisa/internal/conversation"
	"github.com/paisa-ai/paisa/internal/extract"
)

// loadCatalog returns the configured catalog: an external file when
// catalog.path is set, the embedded one otherwise.
func loadCatalog() (*catalog.Catalog, error) {
	if path := viper.GetString("catalog.path"); path != "" {
		cat, err := catalog.LoadFile(path)
		if err != nil {
			return nil, common.NewUserError("could not load catalog file", err)
		}
		return cat, nil
	}

	cat, err := catalog.Load()
	if err != nil {
		return nil, common.NewUserError("built-in catalog is invalid", err)
	}
	return cat, nil
}

// buildEngine wires the full pipeline: catalog, extractor, classifier,
// engine.
func buildEngine() (*conversation.Engine, *catalog.Catalog, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, nil, err
	}

	extractor := extract.New(cat)
	classifier := classify.New(cat, extractor)
	return conversation.NewEngine(cat, classifier), cat, nil
}
