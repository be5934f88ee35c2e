// Package component defines the lifecycle contracts for attachable
// behaviors and the conditional wrapper that gates a component behind a
// condition.
//
// A component is identified by a stable string id and acts on an entity
// of type E with a caller-owned instance carrier of type I. Components
// hold no entity-specific mutable state themselves; everything scoped to
// a single attachment lives in the instance.
package component

// Component is the base capability set every attachable behavior
// implements.
type Component[E, I any] interface {
	// ID returns the stable identifier of this component type.
	ID() string

	// OnApply is called once when the component is attached.
	OnApply(entity E, instance I)

	// OnRemove is called once when the component is detached.
	OnRemove(entity E, instance I)
}

// Tickable is a component that additionally runs periodic logic.
type Tickable[E, I any] interface {
	Component[E, I]

	// OnTick is called once per tick cycle while attached.
	OnTick(entity E, instance I)

	// TickInterval returns how many scheduler cycles make up one tick
	// for this component. Always at least 1; a component that never
	// ticks simply does not implement Tickable.
	TickInterval() int
}

// Stateful is a component with an activation predicate and transition
// hooks fired on activation edges.
type Stateful[E, I any] interface {
	Component[E, I]

	// IsActive reports whether the component's conditions currently hold.
	IsActive(entity E, instance I) bool

	// OnActivate is called when conditions transition from false to true.
	OnActivate(entity E, instance I)

	// OnDeactivate is called when conditions transition from true to false.
	OnDeactivate(entity E, instance I)
}

// Base provides the id plus no-op apply/remove hooks; concrete
// components embed it and override what they need.
type Base[E, I any] struct {
	id string
}

// NewBase creates a Base with the given component id.
func NewBase[E, I any](id string) Base[E, I] {
	return Base[E, I]{id: id}
}

func (b Base[E, I]) ID() string                    { return b.id }
func (b Base[E, I]) OnApply(entity E, instance I)  {}
func (b Base[E, I]) OnRemove(entity E, instance I) {}

// StatefulBase extends Base with no-op transition hooks for stateful
// components that only care about IsActive.
type StatefulBase[E, I any] struct {
	Base[E, I]
}

// NewStatefulBase creates a StatefulBase with the given component id.
func NewStatefulBase[E, I any](id string) StatefulBase[E, I] {
	return StatefulBase[E, I]{Base: NewBase[E, I](id)}
}

func (b StatefulBase[E, I]) OnActivate(entity E, instance I)   {}
func (b StatefulBase[E, I]) OnDeactivate(entity E, instance I) {}
