// Package trigger provides pre-built conditions for common environmental
// predicates: time of day, moon phase, weather, dimension and equipment.
//
// All triggers are pure compositions of the condition algebra and carry no
// state of their own; the shared instances below are cached so hot tick
// paths do not allocate.
package trigger

import (
	"fmt"

	"github.com/zeusync/basalt/internal/core/condition"
	"github.com/zeusync/basalt/internal/core/world"
)

// Cond is the condition type every trigger produces.
type Cond = condition.Condition[world.Actor]

// Triggers that reach through the actor into world state use
// condition.Guard: an actor with missing sub-state evaluates to false
// instead of aborting the whole tick batch.
var (
	day = condition.Guard("day", func(a world.Actor) bool {
		return world.IsDay(a.World())
	})
	night = condition.Guard("night", func(a world.Actor) bool {
		return world.IsNight(a.World())
	})
	skyAccess = condition.Guard("skyAccess", func(a world.Actor) bool {
		return a.SkyLight() >= world.MaxSkyLight
	})
	storm = condition.Guard("storm", func(a world.Actor) bool {
		return a.World().HasStorm()
	})
	thundering = condition.Guard("thundering", func(a world.Actor) bool {
		return a.World().IsThundering()
	})
	helmet = condition.Guard("helmet", func(a world.Actor) bool {
		return a.HasHelmet()
	})
	fullMoon = condition.Guard("fullMoon", func(a world.Actor) bool {
		return world.IsFullMoon(a.World())
	})
	newMoon = condition.Guard("newMoon", func(a world.Actor) bool {
		return world.IsNewMoon(a.World())
	})
	brightMoon = condition.Guard("brightMoon", func(a world.Actor) bool {
		return world.CurrentMoonPhase(a.World()).Bright()
	})
)

// Day holds outside the night window.
func Day() Cond { return day }

// Night holds within the night window.
func Night() Cond { return night }

// TimeInRange holds when the world's time of day is within [start, end],
// inclusive on both bounds. A start greater than end means the range
// wraps across the day boundary, e.g. 22000-2000 matches both late night
// and early morning.
func TimeInRange(start, end int64) Cond {
	desc := fmt.Sprintf("timeInRange(%d-%d)", start, end)
	return condition.Guard(desc, func(a world.Actor) bool {
		t := a.World().TimeOfDay()
		if start <= end {
			return t >= start && t <= end
		}
		return t >= start || t <= end
	})
}

// FullMoon holds during the full moon phase.
func FullMoon() Cond { return fullMoon }

// NewMoon holds during the new moon phase.
func NewMoon() Cond { return newMoon }

// MoonPhase holds when the current moon phase is any of the given phases.
func MoonPhase(phases ...world.MoonPhase) Cond {
	set := make(map[world.MoonPhase]struct{}, len(phases))
	for _, p := range phases {
		set[p] = struct{}{}
	}
	desc := fmt.Sprintf("moonPhase(%v)", phases)
	return condition.Guard(desc, func(a world.Actor) bool {
		_, ok := set[world.CurrentMoonPhase(a.World())]
		return ok
	})
}

// BrightMoon holds when the moon is at least half illuminated.
func BrightMoon() Cond { return brightMoon }

// DarkMoon holds when the moon is less than half illuminated; together
// with BrightMoon it partitions the eight-phase cycle.
func DarkMoon() Cond { return condition.Not(brightMoon) }

// SkyAccess holds when the actor has direct sky access.
func SkyAccess() Cond { return skyAccess }

// UnderCover holds when the actor is underground or under cover.
func UnderCover() Cond { return condition.Not(skyAccess) }

// Storm holds while rain or snow falls in the actor's world.
func Storm() Cond { return storm }

// ClearWeather holds while no storm is active.
func ClearWeather() Cond { return condition.Not(storm) }

// Thundering holds during a thunderstorm.
func Thundering() Cond { return thundering }

// Helmet holds when the actor wears head equipment.
func Helmet() Cond { return helmet }

// NoHelmet holds when the actor's head slot is empty.
func NoHelmet() Cond { return condition.Not(helmet) }

// InDimension holds when the actor's world is of the given kind.
func InDimension(d world.Dimension) Cond {
	return condition.Guard("inDimension("+d.String()+")", func(a world.Actor) bool {
		return a.World().Dimension() == d
	})
}

// InOverworld holds in overworld-kind worlds.
func InOverworld() Cond { return InDimension(world.Overworld) }

// InNether holds in nether-kind worlds.
func InNether() Cond { return InDimension(world.Nether) }

// InEnd holds in end-kind worlds.
func InEnd() Cond { return InDimension(world.End) }

// ExposedToSunlight holds when the actor stands in direct daylight:
// daytime, sky access, clear weather and no helmet.
func ExposedToSunlight() Cond {
	return condition.And(Day(), SkyAccess(), ClearWeather(), NoHelmet())
}

// ProtectedFromSunlight holds when any sunlight protection applies.
func ProtectedFromSunlight() Cond {
	return condition.Not(ExposedToSunlight())
}

// FullMoonNight holds during a night with a full moon.
func FullMoonNight() Cond {
	return condition.And(Night(), FullMoon())
}

// BrightMoonNight holds during a night with a bright moon.
func BrightMoonNight() Cond {
	return condition.And(Night(), BrightMoon())
}
