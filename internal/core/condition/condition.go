// Package condition implements a small composable predicate algebra.
//
// Conditions are reusable boolean-valued functions of a context value.
// They carry no identity beyond their behavior, hold no mutable state and
// may be shared freely across entities and evaluated concurrently.
package condition

// Condition is a predicate over a context of type T.
//
// Implementations must be pure: no observable side effects, no internal
// mutable state, total for every non-nil context.
type Condition[T any] interface {
	// Test reports whether the condition holds for the given context.
	Test(ctx T) bool

	// Describe returns a human-readable label for the condition,
	// used when rendering condition trees.
	Describe() string
}

type funcCondition[T any] struct {
	desc string
	fn   func(T) bool
}

func (c *funcCondition[T]) Test(ctx T) bool { return c.fn(ctx) }

func (c *funcCondition[T]) Describe() string {
	if c.desc == "" {
		return "condition"
	}
	return c.desc
}

// Of creates a condition from a test function with a custom description.
func Of[T any](desc string, fn func(T) bool) Condition[T] {
	return &funcCondition[T]{desc: desc, fn: fn}
}

// Always returns a condition that passes for every context.
func Always[T any]() Condition[T] {
	return Of("always", func(T) bool { return true })
}

// Never returns a condition that fails for every context.
func Never[T any]() Condition[T] {
	return Of("never", func(T) bool { return false })
}

type guardCondition[T any] struct {
	desc string
	fn   func(T) bool
}

func (c *guardCondition[T]) Test(ctx T) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return c.fn(ctx)
}

func (c *guardCondition[T]) Describe() string { return c.desc }

// Guard creates a condition whose test function is allowed to fail.
// A panic during evaluation is treated as "does not hold" instead of
// propagating; callers evaluating many conditions per tick must not be
// aborted by a single faulty predicate. The plain algebra never recovers.
func Guard[T any](desc string, fn func(T) bool) Condition[T] {
	return &guardCondition[T]{desc: desc, fn: fn}
}
