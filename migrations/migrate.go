// Package migrations embeds the schema of both sync stores and applies it
// with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

// Set selects one of the embedded migration sets.
type Set string

const (
	// Client is the SQLite schema of the vehicle store.
	Client Set = "client"
	// Server is the PostgreSQL schema of the sync server.
	Server Set = "server"
)

var errNilDB = errors.New("migration error: db is nil")

func (s Set) dialect() (goose.Dialect, error) {
	switch s {
	case Client:
		return goose.DialectSQLite3, nil
	case Server:
		return goose.DialectPostgres, nil
	default:
		return "", fmt.Errorf("migration error: unknown migration set %q", s)
	}
}

// Migrate applies every pending migration of set to db.
func Migrate(ctx context.Context, db *sql.DB, set Set) error {
	if db == nil {
		return errNilDB
	}

	dialect, err := set.dialect()
	if err != nil {
		return err
	}

	fsys, err := fs.Sub(embedMigrations, string(set))
	if err != nil {
		return fmt.Errorf("migration error reading %s migrations: %w", set, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
