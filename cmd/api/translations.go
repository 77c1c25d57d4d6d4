package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"shuvoedward/Bible_lookup/internal/bible"
	"shuvoedward/Bible_lookup/internal/config"
	"shuvoedward/Bible_lookup/internal/corpus"
)

// loadTranslations registers the embedded translations, the configured
// custom ones and those stored in Postgres, then selects the default.
// Custom and stored translations are remembered for reloading.
func (app *application) loadTranslations(ctx context.Context) error {
	passages := app.services.Passage

	for _, tr := range corpus.Builtins() {
		if err := passages.Load(ctx, tr.ID, tr); err != nil {
			return err
		}
	}

	app.sources = make(map[string]bible.Source)

	var s3Client *s3.Client
	for _, ct := range app.config.Translations.Custom {
		src, err := app.customSource(ctx, ct, &s3Client)
		if err != nil {
			return err
		}
		if err := passages.Load(ctx, ct.ID, src); err != nil {
			return err
		}
		app.sources[ct.ID] = src
	}

	if len(app.config.Translations.Stored) > 0 && app.models == nil {
		return fmt.Errorf("stored translations need postgres.dsn")
	}
	for _, id := range app.config.Translations.Stored {
		src, err := app.models.Corpus.Source(ctx, id)
		if err != nil {
			return fmt.Errorf("stored translation %s: %w", id, err)
		}
		if err := passages.Load(ctx, id, src); err != nil {
			return err
		}
		app.sources[id] = src
	}

	defaultID := app.config.Translations.Default
	if defaultID == "" {
		tr, err := corpus.Default()
		if err != nil {
			// the first custom or stored translation stays the default
			return nil
		}
		defaultID = tr.ID
	}
	return passages.SetDefault(defaultID)
}

func (app *application) customSource(ctx context.Context, ct config.CustomTranslation, client **s3.Client) (bible.Source, error) {
	name := ct.Name
	if name == "" {
		name = ct.ID
	}

	if !strings.HasPrefix(ct.Path, "s3://") {
		return corpus.Custom(name, ct.Path), nil
	}

	bucket, key, err := corpus.ParseS3URI(ct.Path)
	if err != nil {
		return nil, err
	}
	if *client == nil {
		*client, err = corpus.NewS3Client(ctx, app.config.Translations.S3Region)
		if err != nil {
			return nil, fmt.Errorf("s3 client: %w", err)
		}
	}

	return corpus.S3Source{Client: *client, Bucket: bucket, Key: key, Label: name}, nil
}
