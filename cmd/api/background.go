package main

import (
	"context"
	"time"

	"shuvoedward/Bible_lookup/internal/bible"
)

// reloadTranslations re-reads the custom and stored translations on every
// tick until ctx is done.
func (app *application) reloadTranslations(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.reloadOnce(ctx)
		}
	}
}

// reloadOnce swaps in every translation whose content changed. A failed read
// keeps the loaded copy.
func (app *application) reloadOnce(ctx context.Context) {
	for id, src := range app.sources {
		b, err := bible.New(ctx, src)
		if err != nil {
			app.logger.Error("failed to reload translation", "translation", id, "error", err)
			continue
		}

		current, err := app.services.Passage.Bible(id)
		if err == nil && current.Digest() == b.Digest() {
			continue
		}

		app.services.Passage.Register(id, b)
		app.logger.Info("translation reloaded", "translation", id, "verses", b.Len())
	}
}
