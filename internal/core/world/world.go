// Package world defines the read-only view of simulation state that
// conditions query, plus time and moon-phase calculations over it.
//
// Hosts implement the View and Actor interfaces; this package places no
// constraints on where that state comes from, only that queries are
// synchronous and non-blocking.
package world

// Dimension identifies the kind of world an actor is in.
type Dimension uint8

const (
	Overworld Dimension = iota
	Nether
	End
)

func (d Dimension) String() string {
	switch d {
	case Overworld:
		return "overworld"
	case Nether:
		return "nether"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// View is a read-only snapshot of a world's environmental state.
type View interface {
	// TimeOfDay returns the current time within the day cycle,
	// in ticks [0, TicksPerDay).
	TimeOfDay() int64

	// FullTime returns the total world age in ticks.
	FullTime() int64

	// HasStorm reports whether rain or snow is falling.
	HasStorm() bool

	// IsThundering reports whether a thunderstorm is active.
	IsThundering() bool

	// Dimension returns the kind of this world.
	Dimension() Dimension
}

// Actor is the subject a condition or component acts upon.
type Actor interface {
	// World returns the world the actor currently inhabits.
	World() View

	// SkyLight returns the sky light level at the actor's position,
	// in [0, MaxSkyLight].
	SkyLight() int

	// HasHelmet reports whether the actor wears head equipment.
	HasHelmet() bool
}

// MaxSkyLight is the light level of a position with direct sky access.
const MaxSkyLight = 15
