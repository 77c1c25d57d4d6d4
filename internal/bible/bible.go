// Package bible parses verse-per-line corpora into an immutable
// book/chapter/verse index and answers lookups against it.
package bible

import (
	"context"
	"fmt"
)

// Source produces the raw corpus text of one translation.
type Source interface {
	Text(ctx context.Context) (string, error)
	String() string
}

// Bible is a parsed translation. The embedded Index provides the lookups.
type Bible struct {
	Name string
	*Index
}

// New loads the text of src and parses it. Load errors are returned as-is so
// callers can match ErrInvalidCustomTranslationFile and ErrIO.
func New(ctx context.Context, src Source) (*Bible, error) {
	text, err := src.Text(ctx)
	if err != nil {
		return nil, err
	}

	idx, err := ParseString(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src, err)
	}

	return &Bible{
		Name:  src.String(),
		Index: idx,
	}, nil
}
