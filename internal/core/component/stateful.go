package component

import "github.com/zeusync/basalt/internal/core/condition"

// ConditionStateful adapts a condition into a stateful component whose
// activation predicate is the condition itself. Transition hooks are
// no-ops unless overridden by embedding.
type ConditionStateful[E, I any] struct {
	StatefulBase[E, I]
	cond condition.Condition[E]
}

var _ Stateful[any, any] = (*ConditionStateful[any, any])(nil)

// NewConditionStateful creates a stateful component driven by the given
// condition.
func NewConditionStateful[E, I any](id string, cond condition.Condition[E]) *ConditionStateful[E, I] {
	return &ConditionStateful[E, I]{
		StatefulBase: NewStatefulBase[E, I](id),
		cond:         cond,
	}
}

// IsActive evaluates the underlying condition against the entity.
func (c *ConditionStateful[E, I]) IsActive(entity E, _ I) bool {
	return c.cond.Test(entity)
}

// Condition returns the driving condition.
func (c *ConditionStateful[E, I]) Condition() condition.Condition[E] {
	return c.cond
}
