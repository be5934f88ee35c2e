// Package config loads conditional-behavior definitions from YAML and
// builds runtime condition trees out of the trigger factories.
package config

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/basalt/internal/core/condition"
	"github.com/zeusync/basalt/internal/core/trigger"
	"github.com/zeusync/basalt/internal/core/world"
)

// File is the top-level YAML document.
type File struct {
	Behaviors []Behavior `yaml:"behaviors"`
}

// Behavior declares one conditional behavior: which component to gate,
// how often to tick it and under what condition it is active.
type Behavior struct {
	ID           string `yaml:"id"`
	Component    string `yaml:"component"`
	TickInterval int    `yaml:"tick_interval"`
	Condition    Node   `yaml:"condition"`
}

// TimeRange is an inclusive time-of-day window; Start greater than End
// wraps across the day boundary.
type TimeRange struct {
	Start int64 `yaml:"start"`
	End   int64 `yaml:"end"`
}

// Node is one node of a condition expression tree. Exactly one field
// must be set per node.
type Node struct {
	All []Node `yaml:"all,omitempty"`
	Any []Node `yaml:"any,omitempty"`
	Not *Node  `yaml:"not,omitempty"`

	// Kind names a parameterless trigger: day, night, storm,
	// clear_weather, thundering, sky_access, under_cover, helmet,
	// no_helmet, full_moon, new_moon, bright_moon, dark_moon.
	Kind string `yaml:"kind,omitempty"`

	TimeRange  *TimeRange `yaml:"time_range,omitempty"`
	MoonPhases []string   `yaml:"moon_phases,omitempty"`
	Dimension  string     `yaml:"dimension,omitempty"`
}

var kinds = map[string]func() trigger.Cond{
	"day":           trigger.Day,
	"night":         trigger.Night,
	"storm":         trigger.Storm,
	"clear_weather": trigger.ClearWeather,
	"thundering":    trigger.Thundering,
	"sky_access":    trigger.SkyAccess,
	"under_cover":   trigger.UnderCover,
	"helmet":        trigger.Helmet,
	"no_helmet":     trigger.NoHelmet,
	"full_moon":     trigger.FullMoon,
	"new_moon":      trigger.NewMoon,
	"bright_moon":   trigger.BrightMoon,
	"dark_moon":     trigger.DarkMoon,
}

// Load decodes a YAML document and validates every behavior, reporting
// all violations at once.
func Load(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	var errs error
	seen := make(map[string]struct{}, len(f.Behaviors))
	for i, b := range f.Behaviors {
		if b.ID == "" {
			errs = multierr.Append(errs, fmt.Errorf("config: behavior %d: id is required", i))
			continue
		}
		key := strings.ToLower(b.ID)
		if _, dup := seen[key]; dup {
			errs = multierr.Append(errs, fmt.Errorf("config: behavior %q: duplicate id", b.ID))
		}
		seen[key] = struct{}{}

		if b.TickInterval < 0 {
			errs = multierr.Append(errs, fmt.Errorf("config: behavior %q: tick_interval must not be negative", b.ID))
		}
		if _, err := b.Condition.Build(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("config: behavior %q: %w", b.ID, err))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return &f, nil
}

// Build converts the expression tree into a runtime condition.
func (n Node) Build() (condition.Condition[world.Actor], error) {
	if err := n.checkExclusive(); err != nil {
		return nil, err
	}

	switch {
	case n.All != nil:
		children, err := buildChildren(n.All)
		if err != nil {
			return nil, err
		}
		return condition.And(children...), nil

	case n.Any != nil:
		children, err := buildChildren(n.Any)
		if err != nil {
			return nil, err
		}
		return condition.Or(children...), nil

	case n.Not != nil:
		child, err := n.Not.Build()
		if err != nil {
			return nil, err
		}
		return condition.Not(child), nil

	case n.Kind != "":
		factory, ok := kinds[n.Kind]
		if !ok {
			return nil, fmt.Errorf("unknown condition kind %q", n.Kind)
		}
		return factory(), nil

	case n.TimeRange != nil:
		tr := n.TimeRange
		if tr.Start < 0 || tr.Start >= world.TicksPerDay || tr.End < 0 || tr.End >= world.TicksPerDay {
			return nil, fmt.Errorf("time_range bounds must be within [0, %d)", world.TicksPerDay)
		}
		return trigger.TimeInRange(tr.Start, tr.End), nil

	case n.MoonPhases != nil:
		phases := make([]world.MoonPhase, 0, len(n.MoonPhases))
		var errs error
		for _, name := range n.MoonPhases {
			p, ok := world.ParseMoonPhase(name)
			if !ok {
				errs = multierr.Append(errs, fmt.Errorf("unknown moon phase %q", name))
				continue
			}
			phases = append(phases, p)
		}
		if errs != nil {
			return nil, errs
		}
		return trigger.MoonPhase(phases...), nil

	case n.Dimension != "":
		switch n.Dimension {
		case "overworld":
			return trigger.InOverworld(), nil
		case "nether":
			return trigger.InNether(), nil
		case "end":
			return trigger.InEnd(), nil
		default:
			return nil, fmt.Errorf("unknown dimension %q", n.Dimension)
		}

	default:
		return nil, fmt.Errorf("empty condition node")
	}
}

func (n Node) checkExclusive() error {
	set := 0
	for _, present := range []bool{
		n.All != nil,
		n.Any != nil,
		n.Not != nil,
		n.Kind != "",
		n.TimeRange != nil,
		n.MoonPhases != nil,
		n.Dimension != "",
	} {
		if present {
			set++
		}
	}
	if set > 1 {
		return fmt.Errorf("condition node must set exactly one of all/any/not/kind/time_range/moon_phases/dimension")
	}
	return nil
}

func buildChildren(nodes []Node) ([]condition.Condition[world.Actor], error) {
	children := make([]condition.Condition[world.Actor], 0, len(nodes))
	var errs error
	for _, n := range nodes {
		child, err := n.Build()
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		children = append(children, child)
	}
	if errs != nil {
		return nil, errs
	}
	return children, nil
}
