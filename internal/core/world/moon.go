package world

// MoonPhase is one of the eight phases of the lunar cycle, in
// chronological order starting at the full moon.
type MoonPhase uint8

const (
	FullMoon MoonPhase = iota
	WaningGibbous
	ThirdQuarter
	WaningCrescent
	NewMoon
	WaxingCrescent
	FirstQuarter
	WaxingGibbous

	moonPhaseCount = 8
)

func (p MoonPhase) String() string {
	switch p {
	case FullMoon:
		return "full_moon"
	case WaningGibbous:
		return "waning_gibbous"
	case ThirdQuarter:
		return "third_quarter"
	case WaningCrescent:
		return "waning_crescent"
	case NewMoon:
		return "new_moon"
	case WaxingCrescent:
		return "waxing_crescent"
	case FirstQuarter:
		return "first_quarter"
	case WaxingGibbous:
		return "waxing_gibbous"
	default:
		return "unknown"
	}
}

// Brightness returns the fraction of the moon that is illuminated
// during this phase, in [0, 1].
func (p MoonPhase) Brightness() float64 {
	switch p {
	case FullMoon:
		return 1.0
	case WaningGibbous, WaxingGibbous:
		return 0.75
	case ThirdQuarter, FirstQuarter:
		return 0.5
	case WaningCrescent, WaxingCrescent:
		return 0.25
	default:
		return 0.0
	}
}

// Bright reports whether the phase is at least half illuminated.
// The bright and dark sets partition the full cycle.
func (p MoonPhase) Bright() bool {
	return p.Brightness() >= 0.5
}

// Phases returns all eight phases in chronological order.
func Phases() []MoonPhase {
	return []MoonPhase{
		FullMoon, WaningGibbous, ThirdQuarter, WaningCrescent,
		NewMoon, WaxingCrescent, FirstQuarter, WaxingGibbous,
	}
}

// ParseMoonPhase resolves a phase from its string form.
func ParseMoonPhase(s string) (MoonPhase, bool) {
	for _, p := range Phases() {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

// CurrentMoonPhase returns the moon phase of the world, derived from
// its day number modulo the eight-phase cycle.
func CurrentMoonPhase(w View) MoonPhase {
	return MoonPhase(DayNumber(w) % moonPhaseCount)
}

// IsFullMoon reports whether the world is in the full moon phase.
func IsFullMoon(w View) bool {
	return CurrentMoonPhase(w) == FullMoon
}

// IsNewMoon reports whether the world is in the new moon phase.
func IsNewMoon(w View) bool {
	return CurrentMoonPhase(w) == NewMoon
}
