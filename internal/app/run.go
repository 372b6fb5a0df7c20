package app

import (
	"context"

	"github.com/specialistvlad/gradebook/internal/ctxlog"
	"github.com/specialistvlad/gradebook/internal/grading"
	"github.com/specialistvlad/gradebook/internal/loader"
)

// Run loads every source into memory, then answers the configured query or,
// when none is configured, the one chosen from the interactive menu.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	book, err := loader.Load(ctx, a.settings.Sources, a.settings.Format)
	if err != nil {
		return err
	}
	engine := grading.New(book, a.duplicates)

	if a.config.Query == "" {
		err = a.interactive(ctx, engine)
	} else {
		a.logger.Info("🔎 Running query.", "query", a.config.Query, "name", a.config.Name)
		err = a.runQuery(ctx, engine, a.config.Query, a.config.Name)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
