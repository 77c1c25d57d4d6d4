package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"shuvoedward/Bible_lookup/internal/bible"
)

type CorpusModel interface {
	Import(ctx context.Context, id, name string, idx *bible.Index) error
	List(ctx context.Context) ([]StoredTranslation, error)
	Source(ctx context.Context, id string) (*StoredSource, error)
}

// StoredTranslation describes a translation imported into Postgres.
type StoredTranslation struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Digest     string    `json:"digest"`
	VerseCount int       `json:"verse_count"`
	ImportedAt time.Time `json:"imported_at"`
}

type corpusModel struct {
	DB *sql.DB
}

func NewCorpusModel(db *sql.DB) *corpusModel {
	return &corpusModel{DB: db}
}

// Import replaces translation id with the verses of idx in one transaction.
func (c *corpusModel) Import(ctx context.Context, id, name string, idx *bible.Index) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// verses cascade
	_, err = tx.ExecContext(ctx, `DELETE FROM translations WHERE id = $1`, id)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO translations (id, name, digest, verse_count)
		VALUES ($1, $2, $3, $4)`

	_, err = tx.ExecContext(ctx, query, id, name, digestString(idx.Digest()), idx.Len())
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("verses", "translation_id", "book", "chapter", "verse", "text"))
	if err != nil {
		return err
	}

	err = idx.Walk(func(book string, chapter, verse int, text string) error {
		_, err := stmt.ExecContext(ctx, id, book, chapter, verse, text)
		return err
	})
	if err != nil {
		stmt.Close()
		return fmt.Errorf("copy verses: %w", err)
	}

	// flush the buffered rows
	if _, err = stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("copy verses: %w", err)
	}
	if err = stmt.Close(); err != nil {
		return err
	}

	return tx.Commit()
}

func (c *corpusModel) List(ctx context.Context) ([]StoredTranslation, error) {
	query := `
		SELECT id, name, digest, verse_count, imported_at
		FROM translations
		ORDER BY id`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	translations := []StoredTranslation{}
	for rows.Next() {
		var t StoredTranslation
		if err := rows.Scan(&t.ID, &t.Name, &t.Digest, &t.VerseCount, &t.ImportedAt); err != nil {
			return nil, err
		}
		translations = append(translations, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return translations, nil
}

// Source returns a bible.Source reading translation id back from the
// database.
func (c *corpusModel) Source(ctx context.Context, id string) (*StoredSource, error) {
	query := `
		SELECT id, name, digest, verse_count, imported_at
		FROM translations
		WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var t StoredTranslation
	err := c.DB.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Digest, &t.VerseCount, &t.ImportedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &StoredSource{db: c.DB, Translation: t}, nil
}

// StoredSource renders a stored translation in the verse-per-line format.
type StoredSource struct {
	db          *sql.DB
	Translation StoredTranslation
}

func (s *StoredSource) String() string {
	return s.Translation.Name
}

func (s *StoredSource) Text(ctx context.Context) (string, error) {
	query := `
		SELECT book, chapter, verse, text
		FROM verses
		WHERE translation_id = $1
		ORDER BY book, chapter, verse`

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, s.Translation.ID)
	if err != nil {
		return "", bible.IOError(err)
	}
	defer rows.Close()

	var b strings.Builder
	for rows.Next() {
		var (
			book           string
			chapter, verse int
			text           string
		)
		if err := rows.Scan(&book, &chapter, &verse, &text); err != nil {
			return "", bible.IOError(err)
		}
		b.WriteString(bible.FormatLine(book, chapter, verse, text))
		b.WriteByte('\n')
	}
	if err = rows.Err(); err != nil {
		return "", bible.IOError(err)
	}

	return b.String(), nil
}

func digestString(d uint64) string {
	return fmt.Sprintf("%016x", d)
}

var _ bible.Source = (*StoredSource)(nil)
