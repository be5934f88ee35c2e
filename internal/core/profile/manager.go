package profile

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"
	"golang.org/x/sync/singleflight"

	"github.com/zeusync/basalt/internal/core/observability/log"
	"github.com/zeusync/basalt/internal/core/storage"
)

const defaultShardCount = 16

type shard struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// Manager is the hash-sharded profile cache. Loads go through the
// backing store exactly once per identity even under concurrent
// requests; saves are skipped for clean profiles.
type Manager struct {
	shards []*shard
	store  storage.Store
	group  singleflight.Group
	logger log.Log
}

// NewManager creates a manager over the given store. A nil logger
// discards diagnostics.
func NewManager(store storage.Store, logger log.Log) *Manager {
	if logger == nil {
		logger = log.NewNop()
	}
	shards := make([]*shard, defaultShardCount)
	for i := range shards {
		shards[i] = &shard{profiles: make(map[string]*Profile)}
	}
	return &Manager{shards: shards, store: store, logger: logger}
}

func (m *Manager) shardFor(id string) *shard {
	return m.shards[xxhash.Sum64String(id)%uint64(len(m.shards))]
}

// Get returns the cached profile for the identity, if loaded.
func (m *Manager) Get(id string) (*Profile, bool) {
	sh := m.shardFor(id)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	p, ok := sh.profiles[id]
	return p, ok
}

// Load returns the profile for the identity, fetching it from the store
// on first use. Concurrent loads of the same identity are deduplicated;
// a missing record yields a fresh empty profile.
func (m *Manager) Load(ctx context.Context, id string) (*Profile, error) {
	if p, ok := m.Get(id); ok {
		return p, nil
	}

	v, err, _ := m.group.Do(id, func() (any, error) {
		if p, ok := m.Get(id); ok {
			return p, nil
		}

		p := NewProfile(id)
		rec, err := m.store.Load(ctx, id)
		switch {
		case err == nil:
			p.data.Replace(rec.Data)
			p.markSaved()
		case errors.Is(err, storage.ErrNotFound):
			m.logger.Debug("no stored profile, starting fresh", log.String("id", id))
		default:
			return nil, fmt.Errorf("profile: load %q: %w", id, err)
		}

		sh := m.shardFor(id)
		sh.mu.Lock()
		sh.profiles[id] = p
		sh.mu.Unlock()

		m.logger.Info("profile loaded", log.String("id", id))
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Profile), nil
}

// Save persists the profile's data bag if it changed since the last
// save.
func (m *Manager) Save(ctx context.Context, id string) error {
	p, ok := m.Get(id)
	if !ok {
		return fmt.Errorf("profile: save %q: not loaded", id)
	}
	return m.save(ctx, p)
}

func (m *Manager) save(ctx context.Context, p *Profile) error {
	if !p.dirty() {
		return nil
	}
	rec := &storage.Record{ID: p.id, Data: p.data.Snapshot()}
	if err := m.store.Save(ctx, rec); err != nil {
		return fmt.Errorf("profile: save %q: %w", p.id, err)
	}
	p.markSaved()
	return nil
}

// Unload saves the profile and evicts it from the cache.
func (m *Manager) Unload(ctx context.Context, id string) error {
	sh := m.shardFor(id)
	sh.mu.Lock()
	p, ok := sh.profiles[id]
	delete(sh.profiles, id)
	sh.mu.Unlock()

	if !ok {
		return nil
	}
	if err := m.save(ctx, p); err != nil {
		return err
	}
	m.logger.Info("profile unloaded", log.String("id", id))
	return nil
}

// SaveAll persists every dirty cached profile, aggregating failures so
// one broken profile does not stop the sweep.
func (m *Manager) SaveAll(ctx context.Context) error {
	var errs error
	for _, sh := range m.shards {
		sh.mu.RLock()
		profiles := make([]*Profile, 0, len(sh.profiles))
		for _, p := range sh.profiles {
			profiles = append(profiles, p)
		}
		sh.mu.RUnlock()

		for _, p := range profiles {
			errs = multierr.Append(errs, m.save(ctx, p))
		}
	}
	return errs
}

// Range calls fn for every cached profile until fn returns false.
func (m *Manager) Range(fn func(*Profile) bool) {
	for _, sh := range m.shards {
		sh.mu.RLock()
		profiles := make([]*Profile, 0, len(sh.profiles))
		for _, p := range sh.profiles {
			profiles = append(profiles, p)
		}
		sh.mu.RUnlock()

		for _, p := range profiles {
			if !fn(p) {
				return
			}
		}
	}
}

// Len returns the number of cached profiles.
func (m *Manager) Len() int {
	n := 0
	for _, sh := range m.shards {
		sh.mu.RLock()
		n += len(sh.profiles)
		sh.mu.RUnlock()
	}
	return n
}
