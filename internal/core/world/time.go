package world

import "fmt"

// Time constants, in world ticks.
const (
	TicksPerSecond int64 = 20
	TicksPerMinute       = TicksPerSecond * 60
	TicksPerHour         = TicksPerMinute * 60
	TicksPerDay    int64 = 24000
)

// Time-of-day boundaries.
const (
	Sunrise    int64 = 0
	Noon       int64 = 6000
	Sunset     int64 = 12000
	Midnight   int64 = 18000
	NightStart int64 = 13000
	NightEnd   int64 = 23000
)

// IsNight reports whether the world is within the night window.
func IsNight(w View) bool {
	t := w.TimeOfDay()
	return t >= NightStart && t <= NightEnd
}

// IsDay reports whether the world is outside the night window.
func IsDay(w View) bool {
	return !IsNight(w)
}

// DayNumber returns the zero-indexed day count of the world.
func DayNumber(w View) int64 {
	return w.FullTime() / TicksPerDay
}

// TicksToSeconds converts world ticks to whole seconds.
func TicksToSeconds(ticks int64) int64 {
	return ticks / TicksPerSecond
}

// SecondsToTicks converts seconds to world ticks.
func SecondsToTicks(seconds int64) int64 {
	return seconds * TicksPerSecond
}

// FormatTicks renders a tick count as a short human-readable duration,
// e.g. "1h23m" or "45s".
func FormatTicks(ticks int64) string {
	seconds := TicksToSeconds(ticks)
	switch {
	case seconds >= 3600:
		return fmt.Sprintf("%dh%dm", seconds/3600, (seconds%3600)/60)
	case seconds >= 60:
		return fmt.Sprintf("%dm%ds", seconds/60, seconds%60)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
