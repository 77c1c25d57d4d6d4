package data

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

var (
	ErrRecordNotFound = errors.New("record not found")
)

//go:embed migrations/*.sql
var migrations embed.FS

type Models struct {
	Corpus CorpusModel
}

func NewModels(db *sql.DB) Models {
	return Models{
		Corpus: NewCorpusModel(db),
	}
}

// Migrate applies every pending up migration. An already current schema is
// not an error.
func Migrate(db *sql.DB) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return err
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
