package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-epr-sync/internal/config"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
)

// Storages groups the server repositories over one PostgreSQL pool.
type Storages struct {
	Records  RecordRepository
	Clients  ClientRepository
	Log      MutationLogRepository
	Accounts AccountRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and wires the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Records:  NewRecordRepository(db, logger),
		Clients:  NewClientRepository(db, logger),
		Log:      NewMutationLogRepository(db, logger),
		Accounts: NewAccountRepository(db, logger),
		db:       db,
	}
}

// Ping checks the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
