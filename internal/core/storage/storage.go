// Package storage persists per-identity profile records. The engine's
// core never touches it directly; the profile manager loads and saves
// through the Store interface.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no record exists for an identity.
var ErrNotFound = errors.New("storage: record not found")

// Record is one identity's persisted state: an arbitrary string-keyed
// data bag plus bookkeeping.
type Record struct {
	ID        string
	Data      map[string]any
	UpdatedAt time.Time
}

// Store is the persistence collaborator contract.
type Store interface {
	// Load returns the record for the identity, or ErrNotFound.
	Load(ctx context.Context, id string) (*Record, error)

	// Save upserts the record.
	Save(ctx context.Context, rec *Record) error

	// Delete removes the record; deleting a missing record is not an
	// error.
	Delete(ctx context.Context, id string) error

	// Close releases underlying resources.
	Close() error
}
