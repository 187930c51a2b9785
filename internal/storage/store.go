// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/commissioner/internal/models"
)

// RosterKey is the fixed key the roster snapshot is stored under.
const RosterKey = "commission-storage"

var (
	// ErrNotFound is returned when no snapshot has been stored under a key.
	ErrNotFound = errors.New("snapshot not found")

	// ErrUnsupportedVersion is returned when a stored snapshot carries a
	// schema version this build does not understand.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

// Store defines the interface for roster persistence.
// This abstraction allows swapping storage backends (SQLite, memory, etc.)
// without changing the roster layer.
type Store interface {
	// LoadRoster retrieves the snapshot stored under key.
	// Returns ErrNotFound if nothing was saved yet and ErrUnsupportedVersion
	// if the record was written by an incompatible schema.
	LoadRoster(ctx context.Context, key string) (*models.Snapshot, error)

	// SaveRoster replaces the snapshot stored under key.
	SaveRoster(ctx context.Context, key string, snapshot *models.Snapshot) error

	// Close releases any resources held by the store.
	Close() error
}
