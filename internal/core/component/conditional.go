package component

import (
	"errors"

	"go.uber.org/multierr"

	"github.com/zeusync/basalt/internal/core/condition"
)

// Configuration errors reported by ConditionalConfig.Validate. A single
// Validate call aggregates every violation instead of stopping at the
// first one.
var (
	ErrMissingID        = errors.New("conditional: id is required")
	ErrMissingWrapped   = errors.New("conditional: wrapped component is required")
	ErrMissingCondition = errors.New("conditional: condition is required")
	ErrMissingStateOf   = errors.New("conditional: state accessor is required")
	ErrBadTickInterval  = errors.New("conditional: tick interval must not be negative")
)

// ConditionalConfig carries the required fields for NewConditional.
type ConditionalConfig[E, I any] struct {
	// ID is the component id of the wrapper itself.
	ID string

	// Wrapped is the component whose lifecycle is gated by Condition.
	Wrapped Component[E, I]

	// Condition gates the wrapped component; evaluated once per wrapper
	// tick against the current entity.
	Condition condition.Condition[E]

	// StateOf locates the activation slot inside the caller-owned
	// instance carrier.
	StateOf func(I) *State

	// TickInterval is the wrapper's declared interval in scheduler
	// cycles. Zero means the default of 1.
	TickInterval int
}

// Validate reports every missing or invalid field at once.
func (c ConditionalConfig[E, I]) Validate() error {
	var err error
	if c.ID == "" {
		err = multierr.Append(err, ErrMissingID)
	}
	if c.Wrapped == nil {
		err = multierr.Append(err, ErrMissingWrapped)
	}
	if c.Condition == nil {
		err = multierr.Append(err, ErrMissingCondition)
	}
	if c.StateOf == nil {
		err = multierr.Append(err, ErrMissingStateOf)
	}
	if c.TickInterval < 0 {
		err = multierr.Append(err, ErrBadTickInterval)
	}
	return err
}

// Conditional wraps a component so its lifecycle follows a condition:
// the wrapped component's OnApply fires when the condition transitions
// to true, OnRemove when it transitions to false, and its periodic hook
// is forwarded only while active. The last-known activation state lives
// in the caller-owned State slot located by the configured accessor.
type Conditional[E, I any] struct {
	id       string
	wrapped  Component[E, I]
	tickable Tickable[E, I] // non-nil only when wrapped has a periodic hook
	cond     condition.Condition[E]
	stateOf  func(I) *State
	interval int
}

var _ Tickable[any, any] = (*Conditional[any, any])(nil)

// NewConditional builds the wrapper, validating the configuration and
// resolving the wrapped component's tick capability once, up front,
// instead of re-probing on every tick.
func NewConditional[E, I any](cfg ConditionalConfig[E, I]) (*Conditional[E, I], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	interval := cfg.TickInterval
	if interval == 0 {
		interval = 1
	}
	c := &Conditional[E, I]{
		id:       cfg.ID,
		wrapped:  cfg.Wrapped,
		cond:     cfg.Condition,
		stateOf:  cfg.StateOf,
		interval: interval,
	}
	if tickable, ok := cfg.Wrapped.(Tickable[E, I]); ok {
		c.tickable = tickable
	}
	return c, nil
}

func (c *Conditional[E, I]) ID() string { return c.id }

// TickInterval returns the wrapper's declared interval. Interval
// counting itself is the scheduler's job; the wrapper trusts the
// caller's cadence.
func (c *Conditional[E, I]) TickInterval() int { return c.interval }

// Wrapped returns the gated component.
func (c *Conditional[E, I]) Wrapped() Component[E, I] { return c.wrapped }

// Condition returns the gating condition.
func (c *Conditional[E, I]) Condition() condition.Condition[E] { return c.cond }

// OnApply activates the wrapped component immediately if the condition
// already holds; no prior tick is required.
func (c *Conditional[E, I]) OnApply(entity E, instance I) {
	if c.cond.Test(entity) {
		c.wrapped.OnApply(entity, instance)
		c.stateOf(instance).set(true)
	}
}

// OnTick re-evaluates the condition, fires the wrapped component's
// apply or remove hook exactly once per transition, then forwards the
// tick while active.
func (c *Conditional[E, I]) OnTick(entity E, instance I) {
	active := c.cond.Test(entity)
	state := c.stateOf(instance)

	switch {
	case active && !state.Active():
		c.wrapped.OnApply(entity, instance)
		state.set(true)
	case !active && state.Active():
		c.wrapped.OnRemove(entity, instance)
		state.set(false)
	}

	if active && c.tickable != nil {
		c.tickable.OnTick(entity, instance)
	}
}

// OnRemove force-deactivates the wrapped component if it is currently
// active, guaranteeing every delivered OnApply is matched by exactly
// one OnRemove even when the attachment is torn down mid-active-state.
func (c *Conditional[E, I]) OnRemove(entity E, instance I) {
	state := c.stateOf(instance)
	if state.Active() {
		c.wrapped.OnRemove(entity, instance)
		state.set(false)
	}
}
