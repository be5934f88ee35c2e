package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeView struct {
	timeOfDay int64
	fullTime  int64
	storm     bool
	thunder   bool
	dim       Dimension
}

func (v fakeView) TimeOfDay() int64     { return v.timeOfDay }
func (v fakeView) FullTime() int64      { return v.fullTime }
func (v fakeView) HasStorm() bool       { return v.storm }
func (v fakeView) IsThundering() bool   { return v.thunder }
func (v fakeView) Dimension() Dimension { return v.dim }

func TestDayNight(t *testing.T) {
	t.Run("Night Window", func(t *testing.T) {
		for _, tick := range []int64{13000, 18000, 23000} {
			require.True(t, IsNight(fakeView{timeOfDay: tick}), "tick %d", tick)
			require.False(t, IsDay(fakeView{timeOfDay: tick}), "tick %d", tick)
		}
	})

	t.Run("Day Window", func(t *testing.T) {
		for _, tick := range []int64{0, 6000, 12999, 23001} {
			require.True(t, IsDay(fakeView{timeOfDay: tick}), "tick %d", tick)
		}
	})
}

func TestDayNumber(t *testing.T) {
	require.Equal(t, int64(0), DayNumber(fakeView{fullTime: 23999}))
	require.Equal(t, int64(1), DayNumber(fakeView{fullTime: 24000}))
	require.Equal(t, int64(10), DayNumber(fakeView{fullTime: 240000}))
}

func TestMoonPhase(t *testing.T) {
	t.Run("Cycle Follows Day Number", func(t *testing.T) {
		for day, want := range Phases() {
			w := fakeView{fullTime: int64(day) * TicksPerDay}
			require.Equal(t, want, CurrentMoonPhase(w), "day %d", day)
		}
		// Wraps after eight days.
		require.Equal(t, FullMoon, CurrentMoonPhase(fakeView{fullTime: 8 * TicksPerDay}))
	})

	t.Run("Full And New Moon", func(t *testing.T) {
		require.True(t, IsFullMoon(fakeView{fullTime: 0}))
		require.True(t, IsNewMoon(fakeView{fullTime: 4 * TicksPerDay}))
		require.False(t, IsFullMoon(fakeView{fullTime: 4 * TicksPerDay}))
	})

	t.Run("Bright Dark Partition", func(t *testing.T) {
		bright := 0
		for _, p := range Phases() {
			if p.Bright() {
				bright++
				require.GreaterOrEqual(t, p.Brightness(), 0.5, "phase %s", p)
			} else {
				require.Less(t, p.Brightness(), 0.5, "phase %s", p)
			}
		}
		require.Equal(t, 5, bright)
	})

	t.Run("Parse Round Trip", func(t *testing.T) {
		for _, p := range Phases() {
			got, ok := ParseMoonPhase(p.String())
			require.True(t, ok)
			require.Equal(t, p, got)
		}
		_, ok := ParseMoonPhase("blood_moon")
		require.False(t, ok)
	})
}

func TestTickConversions(t *testing.T) {
	require.Equal(t, int64(5), TicksToSeconds(100))
	require.Equal(t, int64(100), SecondsToTicks(5))

	require.Equal(t, "45s", FormatTicks(SecondsToTicks(45)))
	require.Equal(t, "2m5s", FormatTicks(SecondsToTicks(125)))
	require.Equal(t, "1h23m", FormatTicks(SecondsToTicks(4980)))
}
