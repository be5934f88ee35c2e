package locale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const enYAML = `
affliction.applied: "{name} takes hold of you"
affliction.removed: "{name} releases you"
sun.burning: "The sunlight burns!"
`

const deYAML = `
sun.burning: "Das Sonnenlicht brennt!"
`

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog("en")
	require.NoError(t, c.LoadLocale("en", strings.NewReader(enYAML)))
	require.NoError(t, c.LoadLocale("de", strings.NewReader(deYAML)))
	return c
}

func TestCatalog(t *testing.T) {
	t.Run("Placeholder Substitution", func(t *testing.T) {
		c := newCatalog(t)
		got := c.Message("en", "affliction.applied", map[string]string{"name": "Vampirism"})
		require.Equal(t, "Vampirism takes hold of you", got)
	})

	t.Run("Localized Message Wins", func(t *testing.T) {
		c := newCatalog(t)
		require.Equal(t, "Das Sonnenlicht brennt!", c.Message("de", "sun.burning", nil))
	})

	t.Run("Missing Message Falls Back To Default Locale", func(t *testing.T) {
		c := newCatalog(t)
		got := c.Message("de", "affliction.removed", map[string]string{"name": "Vampirism"})
		require.Equal(t, "Vampirism releases you", got)
	})

	t.Run("Unknown Id Returns The Id", func(t *testing.T) {
		c := newCatalog(t)
		require.Equal(t, "no.such.key", c.Message("en", "no.such.key", nil))
		require.False(t, c.Has("en", "no.such.key"))
	})

	t.Run("Later Loads Merge Into Locale", func(t *testing.T) {
		c := newCatalog(t)
		require.NoError(t, c.LoadLocale("en", strings.NewReader(`extra.key: "extra"`)))
		require.True(t, c.Has("en", "extra.key"))
		require.True(t, c.Has("en", "sun.burning"))
	})

	t.Run("Bad Document Is Rejected", func(t *testing.T) {
		c := NewCatalog("")
		err := c.LoadLocale("en", strings.NewReader("- just\n- a\n- list"))
		require.Error(t, err)
	})
}
