package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/flourish-client/internal/config"
	"github.com/MKhiriev/flourish-client/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// AnswerRepository caches questionnaire answers.
	AnswerRepository LocalAnswerRepository
	// SessionRepository caches the session user id.
	SessionRepository LocalSessionRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories sharing that connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		AnswerRepository:  NewLocalAnswerRepository(db, logger),
		SessionRepository: NewLocalSessionRepository(db, logger),
		db:                db,
	}
}

// Close closes the underlying database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
