// Package store persists ratings and comments in an embedded Badger
// database. The in-memory state is authoritative: records are loaded once
// at startup and written back after every mutation, so a failed write
// degrades durability but never the running session.
package store

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/ratemyshots/ratemyshots-server/internal/domain"
)

// Store wraps a Badger database instance and the in-memory session state.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	mu       sync.RWMutex
	ratings  map[string]int
	comments []domain.Comment
}

// New opens the database at the given path and loads the persisted records.
// Missing or corrupt records start the session empty.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	store := &Store{
		db:     db,
		logger: logger,
	}
	store.loadRatings()
	store.loadComments()

	if logger != nil {
		logger.Info("Badger database opened successfully",
			"path", path,
			"ratings", len(store.ratings),
			"comments", len(store.comments))
	}

	return store, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// Helper methods for database operations.

// get retrieves a value by key.
func (s *Store) get(key []byte, dest any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
}

// set stores a value by key.
func (s *Store) set(key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// load reads a persisted record into dest. A missing key is a normal
// first-run condition; a corrupt record is logged and dest left untouched.
func (s *Store) load(key []byte, dest any) bool {
	err := s.get(key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, badger.ErrKeyNotFound) && s.logger != nil {
		s.logger.Warn("discarding unreadable record, starting empty",
			"key", string(key), "error", err)
	}
	return false
}

// persist writes a record back to disk. Failures are logged but not
// propagated: the in-memory state stays authoritative for the session.
func (s *Store) persist(key []byte, value any) {
	if err := s.set(key, value); err != nil && s.logger != nil {
		s.logger.Warn("failed to persist record",
			"key", string(key), "error", err)
	}
}
