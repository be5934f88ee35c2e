package condition

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type ctx struct {
	a, b bool
}

func TestAlgebra(t *testing.T) {
	condA := Of("A", func(c ctx) bool { return c.a })
	condB := Of("B", func(c ctx) bool { return c.b })

	all := []ctx{{false, false}, {false, true}, {true, false}, {true, true}}

	t.Run("And Matches Logical And", func(t *testing.T) {
		cond := And(condA, condB)
		for _, c := range all {
			require.Equal(t, c.a && c.b, cond.Test(c), "context %+v", c)
		}
	})

	t.Run("Or Matches Logical Or", func(t *testing.T) {
		cond := Or(condA, condB)
		for _, c := range all {
			require.Equal(t, c.a || c.b, cond.Test(c), "context %+v", c)
		}
	})

	t.Run("Not Matches Logical Not", func(t *testing.T) {
		cond := Not(condA)
		for _, c := range all {
			require.Equal(t, !c.a, cond.Test(c), "context %+v", c)
		}
	})

	t.Run("De Morgan", func(t *testing.T) {
		left := Not(And(condA, condB))
		right := Or(Not(condA), Not(condB))
		for _, c := range all {
			require.Equal(t, right.Test(c), left.Test(c), "context %+v", c)
		}
	})

	t.Run("Constants", func(t *testing.T) {
		require.True(t, Always[ctx]().Test(ctx{}))
		require.False(t, Never[ctx]().Test(ctx{}))
	})
}

func TestCompositeConstruction(t *testing.T) {
	condA := Of("A", func(c ctx) bool { return c.a })
	condB := Of("B", func(c ctx) bool { return c.b })

	t.Run("Empty And Is Always", func(t *testing.T) {
		cond := And[ctx]()
		require.True(t, cond.Test(ctx{}))
		require.True(t, cond.Test(ctx{a: true, b: true}))
	})

	t.Run("Empty Or Is Never", func(t *testing.T) {
		cond := Or[ctx]()
		require.False(t, cond.Test(ctx{}))
		require.False(t, cond.Test(ctx{a: true, b: true}))
	})

	t.Run("Single Child Collapses To Child", func(t *testing.T) {
		require.Same(t, condA, And(condA))
		require.Same(t, condB, Or(condB))
	})

	t.Run("Double Negation Returns Original Instance", func(t *testing.T) {
		require.Same(t, condA, Not(Not(condA)))
	})

	t.Run("Arguments Are Copied", func(t *testing.T) {
		conds := []Condition[ctx]{condA, condB}
		cond := And(conds...)
		conds[0] = Never[ctx]()
		require.True(t, cond.Test(ctx{a: true, b: true}))
	})
}

func TestShortCircuit(t *testing.T) {
	calls := 0
	counting := Of("counting", func(c ctx) bool {
		calls++
		return c.a
	})

	t.Run("And Stops At First False", func(t *testing.T) {
		calls = 0
		cond := And(Never[ctx](), counting)
		require.False(t, cond.Test(ctx{a: true}))
		require.Zero(t, calls)
	})

	t.Run("Or Stops At First True", func(t *testing.T) {
		calls = 0
		cond := Or(Always[ctx](), counting)
		require.True(t, cond.Test(ctx{a: true}))
		require.Zero(t, calls)
	})
}

func TestDescribe(t *testing.T) {
	condA := Of("A", func(c ctx) bool { return c.a })
	condB := Of("B", func(c ctx) bool { return c.b })
	condC := Of("C", func(ctx) bool { return true })

	t.Run("And Rendering", func(t *testing.T) {
		require.Equal(t, "(A AND B AND C)", And(condA, condB, condC).Describe())
	})

	t.Run("Or Rendering", func(t *testing.T) {
		require.Equal(t, "(A OR B)", Or(condA, condB).Describe())
	})

	t.Run("Not Rendering", func(t *testing.T) {
		require.Equal(t, "NOT A", Not(condA).Describe())
	})

	t.Run("Nested Rendering", func(t *testing.T) {
		cond := Or(And(condA, condB), Not(condC))
		require.Equal(t, "((A AND B) OR NOT C)", cond.Describe())
	})

	t.Run("Unnamed Condition Has Fallback Label", func(t *testing.T) {
		require.Equal(t, "condition", Of[ctx]("", func(ctx) bool { return true }).Describe())
	})
}

func TestGuard(t *testing.T) {
	t.Run("Panic Is Treated As False", func(t *testing.T) {
		var nilMap map[string]bool
		cond := Guard("faulty", func(k string) bool {
			nilMap["x"] = true // always panics
			return true
		})
		require.NotPanics(t, func() {
			require.False(t, cond.Test("anything"))
		})
	})

	t.Run("Normal Evaluation Passes Through", func(t *testing.T) {
		cond := Guard("len", func(s string) bool { return len(s) > 3 })
		require.True(t, cond.Test("abcd"))
		require.False(t, cond.Test("ab"))
	})

	t.Run("Plain Algebra Does Not Recover", func(t *testing.T) {
		cond := Of("boom", func(string) bool { panic("boom") })
		require.Panics(t, func() { And(cond, cond).Test("x") })
	})
}
