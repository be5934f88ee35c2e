// Package profile caches per-identity instance state: the data bag host
// code reads and writes, plus the typed activation slots conditional
// wrappers persist their flags in. Profiles are loaded through a Store
// and cached in a hash-sharded map.
package profile

import (
	"sync"

	"github.com/zeusync/basalt/internal/core/component"
)

// Profile is one identity's instance carrier. It is handed to component
// lifecycle hooks as the instance value and outlives individual
// attachments; it may be discarded once the identity detaches.
type Profile struct {
	id   string
	data *Data

	mu     sync.Mutex
	states map[string]*component.State

	savedVersion uint64
}

// NewProfile creates a fresh profile for the identity.
func NewProfile(id string) *Profile {
	return &Profile{
		id:     id,
		data:   NewData(),
		states: make(map[string]*component.State),
	}
}

// ID returns the identity this profile belongs to.
func (p *Profile) ID() string { return p.id }

// Data returns the profile's host-owned data bag.
func (p *Profile) Data() *Data { return p.data }

// State returns the activation slot for the given component id,
// creating it on first use. Slots are keyed per component so unrelated
// wrappers sharing one profile never collide.
func (p *Profile) State(componentID string) *component.State {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.states[componentID]
	if !ok {
		s = &component.State{}
		p.states[componentID] = s
	}
	return s
}

// StateOf returns an accessor locating the activation slot for the
// component id, in the shape the conditional wrapper config expects.
func StateOf(componentID string) func(*Profile) *component.State {
	return func(p *Profile) *component.State {
		return p.State(componentID)
	}
}

// dirty reports whether the data bag changed since the last markSaved.
func (p *Profile) dirty() bool {
	return p.data.Version() != p.savedVersion
}

func (p *Profile) markSaved() {
	p.savedVersion = p.data.Version()
}
