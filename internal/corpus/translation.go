// Package corpus provides the raw text of a translation, either from the
// translations compiled into the binary or from a user supplied file.
package corpus

//go:generate zstd -19 -q -f translations/asv.txt -o translations/asv.txt.zst
//go:generate zstd -19 -q -f translations/kjv.txt -o translations/kjv.txt.zst

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"shuvoedward/Bible_lookup/internal/bible"
)

// CustomID is the ID of every translation read from the filesystem.
const CustomID = "custom"

var (
	ErrUnknownTranslation = errors.New("unknown translation")
	ErrNoTranslations     = errors.New("no translations compiled into this binary")
)

// Translation selects a corpus. Built-in translations are identified by ID;
// custom translations carry a display Name and a filesystem Path.
type Translation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"-"`
}

type builtin struct {
	name string
	data []byte // zstd compressed
}

// builtins is filled by the build-tag guarded files in this package and is
// read-only afterwards.
var builtins = map[string]builtin{}

// precedence decides which built-in Default returns.
var precedence = []string{"akjv", "asv", "erv", "kjv"}

func register(id, name string, data []byte) {
	builtins[id] = builtin{name: name, data: data}
}

// Custom selects a translation file on disk. Files ending in .zst or .xz are
// decompressed when read.
func Custom(name, path string) Translation {
	return Translation{ID: CustomID, Name: name, Path: path}
}

// Builtin selects a translation compiled into the binary.
func Builtin(id string) (Translation, error) {
	b, ok := builtins[id]
	if !ok {
		return Translation{}, fmt.Errorf("%w: %q", ErrUnknownTranslation, id)
	}
	return Translation{ID: id, Name: b.name}, nil
}

// Builtins lists the compiled-in translations ordered by ID.
func Builtins() []Translation {
	ids := make([]string, 0, len(builtins))
	for id := range builtins {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]Translation, 0, len(ids))
	for _, id := range ids {
		out = append(out, Translation{ID: id, Name: builtins[id].name})
	}
	return out
}

// Default returns the preferred compiled-in translation.
func Default() (Translation, error) {
	for _, id := range precedence {
		if _, ok := builtins[id]; ok {
			return Builtin(id)
		}
	}
	return Translation{}, ErrNoTranslations
}

func (t Translation) IsCustom() bool {
	return t.ID == CustomID
}

func (t Translation) String() string {
	if t.IsCustom() {
		return "Custom Translation: " + t.Name
	}
	return t.Name
}

// Text returns the corpus text. Custom files are re-read on every call.
func (t Translation) Text(ctx context.Context) (string, error) {
	if t.IsCustom() {
		return readFile(t.Path)
	}

	b, ok := builtins[t.ID]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTranslation, t.ID)
	}
	data, err := zstdDecoder.DecodeAll(b.data, nil)
	if err != nil {
		return "", bible.IOError(fmt.Errorf("decompress %s: %w", t.ID, err))
	}
	return string(data), nil
}

var _ bible.Source = Translation{}
