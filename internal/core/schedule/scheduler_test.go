package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/basalt/internal/core/component"
)

type entity struct{}
type instance struct{}

type tickRecorder struct {
	component.Base[*entity, *instance]
	interval int
	applies  int
	removes  int
	ticks    int
}

func newTickRecorder(id string, interval int) *tickRecorder {
	return &tickRecorder{
		Base:     component.NewBase[*entity, *instance](id),
		interval: interval,
	}
}

func (r *tickRecorder) OnApply(*entity, *instance)  { r.applies++ }
func (r *tickRecorder) OnRemove(*entity, *instance) { r.removes++ }
func (r *tickRecorder) OnTick(*entity, *instance)   { r.ticks++ }
func (r *tickRecorder) TickInterval() int           { return r.interval }

type plainComponent struct {
	component.Base[*entity, *instance]
	applies int
	removes int
}

func (p *plainComponent) OnApply(*entity, *instance)  { p.applies++ }
func (p *plainComponent) OnRemove(*entity, *instance) { p.removes++ }

func TestSchedulerLifecycle(t *testing.T) {
	t.Run("Attach Delivers Apply Once", func(t *testing.T) {
		s := New[*entity, *instance](nil)
		comp := newTickRecorder("regen", 1)

		s.Attach(comp, &entity{}, &instance{})

		require.Equal(t, 1, comp.applies)
		require.Equal(t, 1, s.Len())
	})

	t.Run("Detach Delivers Remove Once", func(t *testing.T) {
		s := New[*entity, *instance](nil)
		comp := newTickRecorder("regen", 1)

		id := s.Attach(comp, &entity{}, &instance{})
		require.True(t, s.Detach(id))
		require.False(t, s.Detach(id))

		require.Equal(t, 1, comp.removes)
		require.Zero(t, s.Len())
	})

	t.Run("Detached Component Stops Ticking", func(t *testing.T) {
		s := New[*entity, *instance](nil)
		comp := newTickRecorder("regen", 1)

		id := s.Attach(comp, &entity{}, &instance{})
		s.Tick()
		s.Detach(id)
		s.Tick()

		require.Equal(t, 1, comp.ticks)
	})
}

func TestSchedulerIntervals(t *testing.T) {
	t.Run("Interval One Ticks Every Cycle", func(t *testing.T) {
		s := New[*entity, *instance](nil)
		comp := newTickRecorder("fast", 1)
		s.Attach(comp, &entity{}, &instance{})

		for i := 0; i < 5; i++ {
			s.Tick()
		}
		require.Equal(t, 5, comp.ticks)
	})

	t.Run("Interval N Skips N Minus One Cycles", func(t *testing.T) {
		s := New[*entity, *instance](nil)
		comp := newTickRecorder("slow", 3)
		s.Attach(comp, &entity{}, &instance{})

		ticksAfterCycle := make([]int, 0, 7)
		for i := 0; i < 7; i++ {
			s.Tick()
			ticksAfterCycle = append(ticksAfterCycle, comp.ticks)
		}
		// Fires on cycles 3 and 6.
		require.Equal(t, []int{0, 0, 1, 1, 1, 2, 2}, ticksAfterCycle)
	})

	t.Run("Non Tickable Components Never Tick", func(t *testing.T) {
		s := New[*entity, *instance](nil)
		comp := &plainComponent{Base: component.NewBase[*entity, *instance]("static")}
		s.Attach(comp, &entity{}, &instance{})

		s.Tick()
		require.Equal(t, 1, comp.applies)
	})
}

func TestSchedulerOrdering(t *testing.T) {
	s := New[*entity, *instance](nil)
	var order []string

	for _, id := range []string{"first", "second", "third"} {
		id := id
		comp := &orderedComponent{
			Base: component.NewBase[*entity, *instance](id),
			fire: func() { order = append(order, id) },
		}
		s.Attach(comp, &entity{}, &instance{})
	}

	s.Tick()
	require.Equal(t, []string{"first", "second", "third"}, order)
}

type orderedComponent struct {
	component.Base[*entity, *instance]
	fire func()
}

func (c *orderedComponent) OnTick(*entity, *instance) { c.fire() }
func (c *orderedComponent) TickInterval() int         { return 1 }

type faultyComponent struct {
	component.Base[*entity, *instance]
}

func (c *faultyComponent) OnTick(*entity, *instance) { panic("boom") }
func (c *faultyComponent) TickInterval() int         { return 1 }

func TestSchedulerIsolation(t *testing.T) {
	t.Run("Panicking Component Does Not Abort Batch", func(t *testing.T) {
		s := New[*entity, *instance](nil)
		faulty := &faultyComponent{Base: component.NewBase[*entity, *instance]("faulty")}
		healthy := newTickRecorder("healthy", 1)

		s.Attach(faulty, &entity{}, &instance{})
		s.Attach(healthy, &entity{}, &instance{})

		require.NotPanics(t, func() { s.Tick() })
		require.Equal(t, 1, healthy.ticks)
	})

	t.Run("Panicking Apply Still Registers Attachment", func(t *testing.T) {
		s := New[*entity, *instance](nil)
		comp := &faultyApply{Base: component.NewBase[*entity, *instance]("faulty")}

		var id AttachmentID
		require.NotPanics(t, func() {
			id = s.Attach(comp, &entity{}, &instance{})
		})
		require.Equal(t, 1, s.Len())
		require.True(t, s.Detach(id))
	})
}

type faultyApply struct {
	component.Base[*entity, *instance]
}

func (c *faultyApply) OnApply(*entity, *instance) { panic("apply boom") }
