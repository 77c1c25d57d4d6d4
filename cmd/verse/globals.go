package main

import (
	"context"
	"strings"

	"shuvoedward/Bible_lookup/internal/bible"
	"shuvoedward/Bible_lookup/internal/corpus"
)

// Globals are the flags shared by every command.
type Globals struct {
	Translation  string `name:"translation" short:"t" env:"BIBLE_TRANSLATION" help:"Built-in translation id (default: first available of akjv, asv, erv, kjv)"`
	CustomName   string `name:"custom-name" help:"Display name of a custom translation"`
	CustomPath   string `name:"custom-path" help:"Custom translation file (.txt, .zst, .xz) or s3://bucket/key"`
	S3Region     string `name:"s3-region" env:"AWS_REGION" help:"Region for s3:// custom translations"`
	Superscripts bool   `name:"superscripts" short:"s" help:"Prefix verses with superscript numbers"`
	LogLevel     string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level"`
}

// source resolves the translation flags. A custom path wins over
// --translation.
func (g *Globals) source(ctx context.Context) (bible.Source, string, error) {
	if g.CustomPath == "" {
		if g.Translation == "" {
			tr, err := corpus.Default()
			return tr, tr.ID, err
		}
		tr, err := corpus.Builtin(g.Translation)
		return tr, tr.ID, err
	}

	name := g.CustomName
	if name == "" {
		name = g.CustomPath
	}

	if !strings.HasPrefix(g.CustomPath, "s3://") {
		return corpus.Custom(name, g.CustomPath), corpus.CustomID, nil
	}

	bucket, key, err := corpus.ParseS3URI(g.CustomPath)
	if err != nil {
		return nil, "", err
	}
	client, err := corpus.NewS3Client(ctx, g.S3Region)
	if err != nil {
		return nil, "", err
	}
	return corpus.S3Source{Client: client, Bucket: bucket, Key: key, Label: name}, corpus.CustomID, nil
}

func (g *Globals) load(ctx context.Context) (*bible.Bible, error) {
	src, _, err := g.source(ctx)
	if err != nil {
		return nil, err
	}
	return bible.New(ctx, src)
}
