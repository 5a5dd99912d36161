// Package wiring assembles a ready-to-use advisor from configuration.
package wiring

import (
	"fmt"

	"leafcare/internal/advisor"
	"leafcare/internal/catalog"
	"leafcare/internal/config"
	"leafcare/internal/identify"
	"leafcare/internal/logging"
	"leafcare/internal/store"
)

// App owns the advisor and the resources behind it.
type App struct {
	Config  config.Config
	Entries []catalog.Entry
	Service *advisor.Service
	Store   store.Store // nil when persistence is disabled
}

// Open loads the catalog named by cfg, opens the store unless noStore is
// set, and builds the advisor. A non-zero cfg.Seed makes every random draw
// repeatable. Callers must Close the App.
func Open(cfg config.Config, noStore bool) (*App, error) {
	entries, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	var rng identify.Rand
	if cfg.Seed != 0 {
		rng = identify.NewSeeded(cfg.Seed)
	}

	app := &App{Config: cfg, Entries: entries}
	if !noStore {
		st, err := store.Open(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		app.Store = st
	}
	app.Service = advisor.New(entries, rng, app.Store)

	logging.New("wiring").Debug("advisor ready",
		"catalog", catalogLabel(cfg.Catalog), "entries", len(entries),
		"store", !noStore, "seeded", cfg.Seed != 0)
	return app, nil
}

// Close releases the store, if any.
func (a *App) Close() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close()
}

func catalogLabel(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
