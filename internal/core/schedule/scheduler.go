// Package schedule drives attached components from a host tick loop.
//
// The scheduler owns the bookkeeping the component contracts push out of
// the core: per-component tick-interval counting, apply/remove delivery
// at attach/detach time, attachment ordering, and isolation of
// per-component panics so one faulty component cannot abort the batch.
package schedule

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/zeusync/basalt/internal/core/component"
	"github.com/zeusync/basalt/internal/core/observability/log"
)

// AttachmentID identifies one (component, entity, instance) attachment.
type AttachmentID = uuid.UUID

type attachment[E, I any] struct {
	id       AttachmentID
	comp     component.Component[E, I]
	tickable component.Tickable[E, I] // resolved once at attach time
	interval int
	counter  int
	entity   E
	instance I
}

// Scheduler invokes component lifecycle hooks at a fixed cadence.
// Components attached to it are ticked in attachment order. Tick, Attach
// and Detach are safe for concurrent use, though the expected model is a
// single host loop.
type Scheduler[E, I any] struct {
	mu          sync.Mutex
	attachments []*attachment[E, I]
	byID        map[AttachmentID]*attachment[E, I]
	logger      log.Log
}

// New creates a scheduler logging isolated failures through the given
// logger; a nil logger discards them.
func New[E, I any](logger log.Log) *Scheduler[E, I] {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Scheduler[E, I]{
		byID:   make(map[AttachmentID]*attachment[E, I]),
		logger: logger,
	}
}

// Attach registers the component for the (entity, instance) pair and
// delivers its OnApply hook exactly once. The wrapped component's tick
// capability and declared interval are resolved here, not per tick.
func (s *Scheduler[E, I]) Attach(comp component.Component[E, I], entity E, instance I) AttachmentID {
	a := &attachment[E, I]{
		id:       uuid.New(),
		comp:     comp,
		interval: 1,
		entity:   entity,
		instance: instance,
	}
	if tickable, ok := comp.(component.Tickable[E, I]); ok {
		a.tickable = tickable
		if iv := tickable.TickInterval(); iv > 1 {
			a.interval = iv
		}
	}

	s.mu.Lock()
	s.attachments = append(s.attachments, a)
	s.byID[a.id] = a
	s.mu.Unlock()

	s.isolate("apply", comp.ID(), func() {
		comp.OnApply(entity, instance)
	})
	return a.id
}

// Detach removes the attachment and delivers the component's OnRemove
// hook exactly once. It reports whether the attachment existed.
func (s *Scheduler[E, I]) Detach(id AttachmentID) bool {
	s.mu.Lock()
	a, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.byID, id)
	for i, known := range s.attachments {
		if known == a {
			s.attachments = append(s.attachments[:i], s.attachments[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.isolate("remove", a.comp.ID(), func() {
		a.comp.OnRemove(a.entity, a.instance)
	})
	return true
}

// Tick runs one scheduler cycle: every tickable attachment advances its
// interval counter and fires once per its declared interval, skipping
// the other cycles.
func (s *Scheduler[E, I]) Tick() {
	s.mu.Lock()
	due := make([]*attachment[E, I], 0, len(s.attachments))
	for _, a := range s.attachments {
		if a.tickable == nil {
			continue
		}
		a.counter++
		if a.counter >= a.interval {
			a.counter = 0
			due = append(due, a)
		}
	}
	s.mu.Unlock()

	for _, a := range due {
		s.isolate("tick", a.comp.ID(), func() {
			a.tickable.OnTick(a.entity, a.instance)
		})
	}
}

// Len returns the number of current attachments.
func (s *Scheduler[E, I]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attachments)
}

// isolate runs a lifecycle hook, converting a panic into an error log so
// the rest of the batch keeps running.
func (s *Scheduler[E, I]) isolate(hook, componentID string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("component hook panicked",
				log.String("hook", hook),
				log.String("component", componentID),
				log.Error(fmt.Errorf("%v", r)),
			)
		}
	}()
	fn()
}
