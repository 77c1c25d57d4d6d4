package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"text/tabwriter"
	"time"

	_ "github.com/lib/pq"

	"shuvoedward/Bible_lookup/internal/bible"
	"shuvoedward/Bible_lookup/internal/corpus"
	"shuvoedward/Bible_lookup/internal/data"
	"shuvoedward/Bible_lookup/internal/detect"
)

type GetCmd struct {
	Reference []string `arg:"" required:"" help:"Reference, e.g. John 3:16 or 1 Corinthians 13:4-7"`
}

func (c *GetCmd) Run(g *Globals, out io.Writer) error {
	l, err := bible.ParseReference(strings.Join(c.Reference, " "))
	if err != nil {
		return err
	}

	b, err := g.load(context.Background())
	if err != nil {
		return err
	}

	text, err := b.Verse(l, g.Superscripts)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n%s\n", l, text)
	return nil
}

type ChapterCmd struct {
	Book    string `arg:"" help:"Book name, quoted when it has spaces"`
	Chapter int    `arg:"" help:"Chapter number"`
}

func (c *ChapterCmd) Run(g *Globals, out io.Writer) error {
	b, err := g.load(context.Background())
	if err != nil {
		return err
	}

	text, err := b.Chapter(c.Book, c.Chapter, g.Superscripts)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %d\n%s\n", bible.CapitalizeBook(c.Book), c.Chapter, strings.TrimSpace(text))
	return nil
}

type BookCmd struct {
	Book string `arg:"" help:"Book name, quoted when it has spaces"`
}

func (c *BookCmd) Run(g *Globals, out io.Writer) error {
	b, err := g.load(context.Background())
	if err != nil {
		return err
	}

	text, err := b.Book(c.Book, g.Superscripts)
	if err != nil {
		return err
	}

	fmt.Fprint(out, text)
	return nil
}

type BooksCmd struct{}

func (c *BooksCmd) Run(g *Globals, out io.Writer) error {
	b, err := g.load(context.Background())
	if err != nil {
		return err
	}

	for _, book := range b.Books() {
		fmt.Fprintln(out, bible.CapitalizeBook(book))
	}
	return nil
}

type ChaptersCmd struct {
	Book string `arg:"" help:"Book name, quoted when it has spaces"`
}

func (c *ChaptersCmd) Run(g *Globals, out io.Writer) error {
	b, err := g.load(context.Background())
	if err != nil {
		return err
	}

	chapters, err := b.Chapters(c.Book)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CHAPTER\tVERSES")
	for _, chapter := range chapters {
		maxVerse, err := b.MaxVerse(c.Book, chapter)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%d\n", chapter, maxVerse)
	}
	return tw.Flush()
}

type RandomCmd struct {
	Seed uint64 `name:"seed" help:"Seed for a repeatable pick; 0 seeds from the clock"`
}

func (c *RandomCmd) Run(g *Globals, out io.Writer) error {
	b, err := g.load(context.Background())
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	l, err := b.RandomVerse(rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		return err
	}

	text, err := b.Verse(l, g.Superscripts)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n%s\n", l, text)
	return nil
}

type DetectCmd struct {
	Text []string `arg:"" required:"" help:"Text to scan for references"`
}

func (c *DetectCmd) Run(g *Globals, out io.Writer) error {
	refs := detect.References(strings.Join(c.Text, " "))
	if len(refs) == 0 {
		return nil
	}

	b, err := g.load(context.Background())
	if err != nil {
		return err
	}

	for _, l := range refs {
		text, err := b.Verse(l, g.Superscripts)
		if err != nil {
			fmt.Fprintf(out, "%s\t(%v)\n", l, err)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", l, text)
	}
	return nil
}

type TranslationsCmd struct {
	DSN string `name:"dsn" env:"BIBLE_DB_DSN" help:"Also list translations stored in this Postgres database"`
}

func (c *TranslationsCmd) Run(g *Globals, out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSOURCE")

	for _, tr := range corpus.Builtins() {
		fmt.Fprintf(tw, "%s\t%s\tembedded\n", tr.ID, tr.Name)
	}

	if c.DSN != "" {
		db, err := sql.Open("postgres", c.DSN)
		if err != nil {
			return err
		}
		defer db.Close()

		stored, err := data.NewModels(db).Corpus.List(context.Background())
		if err != nil {
			return err
		}
		for _, tr := range stored {
			fmt.Fprintf(tw, "%s\t%s\tpostgres (%d verses)\n", tr.ID, tr.Name, tr.VerseCount)
		}
	}

	return tw.Flush()
}

type ImportCmd struct {
	DSN string `name:"dsn" required:"" env:"BIBLE_DB_DSN" help:"Postgres DSN"`
	ID  string `name:"id" help:"Id to store the translation under (default: the translation id)"`
}

func (c *ImportCmd) Run(g *Globals, out io.Writer, log *slog.Logger) error {
	ctx := context.Background()

	src, id, err := g.source(ctx)
	if err != nil {
		return err
	}
	if c.ID != "" {
		id = c.ID
	}

	b, err := bible.New(ctx, src)
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", c.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := data.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	start := time.Now()
	if err := data.NewModels(db).Corpus.Import(ctx, id, b.Name, b.Index); err != nil {
		return fmt.Errorf("import %s: %w", id, err)
	}
	log.Info("translation imported", "translation", id, "verses", b.Len(), "duration", time.Since(start))

	fmt.Fprintf(out, "imported %d verses as %s\n", b.Len(), id)
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run(out io.Writer) error {
	fmt.Fprintf(out, "verse %s\n", version)
	return nil
}
