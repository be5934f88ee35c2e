package condition

import "strings"

type operator uint8

const (
	opAnd operator = iota
	opOr
	opNot
)

// composite is an n-ary AND/OR node or a unary NOT node.
//
// Invariants enforced at construction: an AND/OR node always has at
// least two children, and a NOT node's child is never itself a NOT node.
type composite[T any] struct {
	op       operator
	children []Condition[T]
}

// And combines conditions so the result holds only when all of them hold.
// Evaluation short-circuits on the first failing child, left to right.
//
// With no arguments it collapses to Always; with a single argument it
// returns that condition unchanged.
func And[T any](conds ...Condition[T]) Condition[T] {
	switch len(conds) {
	case 0:
		return Always[T]()
	case 1:
		return conds[0]
	}
	children := make([]Condition[T], len(conds))
	copy(children, conds)
	return &composite[T]{op: opAnd, children: children}
}

// Or combines conditions so the result holds when any of them holds.
// Evaluation short-circuits on the first passing child, left to right.
//
// With no arguments it collapses to Never; with a single argument it
// returns that condition unchanged.
func Or[T any](conds ...Condition[T]) Condition[T] {
	switch len(conds) {
	case 0:
		return Never[T]()
	case 1:
		return conds[0]
	}
	children := make([]Condition[T], len(conds))
	copy(children, conds)
	return &composite[T]{op: opOr, children: children}
}

// Not negates a condition. Negating a negation unwraps to the original
// instance rather than building a structurally-equal copy; reference
// identity of the grandchild is part of the contract.
func Not[T any](cond Condition[T]) Condition[T] {
	if c, ok := cond.(*composite[T]); ok && c.op == opNot {
		return c.children[0]
	}
	return &composite[T]{op: opNot, children: []Condition[T]{cond}}
}

func (c *composite[T]) Test(ctx T) bool {
	switch c.op {
	case opAnd:
		for _, child := range c.children {
			if !child.Test(ctx) {
				return false
			}
		}
		return true
	case opOr:
		for _, child := range c.children {
			if child.Test(ctx) {
				return true
			}
		}
		return false
	default:
		return !c.children[0].Test(ctx)
	}
}

func (c *composite[T]) Describe() string {
	switch c.op {
	case opAnd:
		return c.join(" AND ")
	case opOr:
		return c.join(" OR ")
	default:
		return "NOT " + c.children[0].Describe()
	}
}

func (c *composite[T]) join(sep string) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, child := range c.children {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(child.Describe())
	}
	sb.WriteByte(')')
	return sb.String()
}
