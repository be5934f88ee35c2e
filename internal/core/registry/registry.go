// Package registry provides a generic string-ID registry with
// case-insensitive lookup and duplicate detection.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/zeusync/basalt/internal/core/observability/log"
)

// Identifiable is anything carrying a stable string id.
type Identifiable interface {
	ID() string
}

// Registry stores entries of type T keyed by a lowercased id.
type Registry[T any] struct {
	mu       sync.RWMutex
	entries  map[string]T
	order    []string
	idOf     func(T) string
	typeName string
	logger   log.Log
}

// Option configures a Registry.
type Option[T any] func(*Registry[T])

// WithTypeName sets the entry type name used in errors and log entries.
func WithTypeName[T any](name string) Option[T] {
	return func(r *Registry[T]) { r.typeName = name }
}

// WithLogger sets the logger used for registration events.
func WithLogger[T any](logger log.Log) Option[T] {
	return func(r *Registry[T]) { r.logger = logger }
}

// New creates a registry using the given id extractor.
func New[T any](idOf func(T) string, opts ...Option[T]) *Registry[T] {
	r := &Registry[T]{
		entries:  make(map[string]T),
		idOf:     idOf,
		typeName: "entry",
		logger:   log.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ForIdentifiable creates a registry keyed by Identifiable.ID.
func ForIdentifiable[T Identifiable](opts ...Option[T]) *Registry[T] {
	return New(func(v T) string { return v.ID() }, opts...)
}

// Register adds an entry, rejecting duplicates (ids compare
// case-insensitively).
func (r *Registry[T]) Register(entry T) error {
	id := strings.ToLower(r.idOf(entry))
	if id == "" {
		return fmt.Errorf("registry: %s has empty id", r.typeName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		return fmt.Errorf("registry: %s %q is already registered", r.typeName, id)
	}
	r.entries[id] = entry
	r.order = append(r.order, id)

	r.logger.Debug("registered "+r.typeName, log.String("id", id))
	return nil
}

// MustRegister registers the entry and panics on conflict; intended for
// static registration at startup.
func (r *Registry[T]) MustRegister(entry T) {
	if err := r.Register(entry); err != nil {
		panic(err)
	}
}

// Unregister removes an entry by id, reporting whether it existed.
func (r *Registry[T]) Unregister(id string) bool {
	id = strings.ToLower(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; !exists {
		return false
	}
	delete(r.entries, id)
	for i, known := range r.order {
		if known == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Get looks up an entry by id, case-insensitively.
func (r *Registry[T]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[strings.ToLower(id)]
	return entry, ok
}

// Has reports whether an entry with the id exists.
func (r *Registry[T]) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// All returns the entries in registration order.
func (r *Registry[T]) All() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// IDs returns the registered ids, sorted.
func (r *Registry[T]) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
