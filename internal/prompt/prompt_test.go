package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_SubstitutesLanguage(t *testing.T) {
	c := NewCatalog()

	out, err := c.Resolve("translate", "French", "")
	require.NoError(t, err)
	require.Contains(t, out, "French")
	require.NotContains(t, out, "{target_language}")
}

func TestResolve_OverrideWinsVerbatim(t *testing.T) {
	c := NewCatalog()

	out, err := c.Resolve("translate", "French", "Be terse.")
	require.NoError(t, err)
	require.Equal(t, "Be terse.", out)
}

func TestResolve_UnknownActionErrors(t *testing.T) {
	c := NewCatalog()

	_, err := c.Resolve("levitate", "French", "")
	require.Error(t, err)
}

func TestResolve_EveryBuiltinSubstitutes(t *testing.T) {
	c := NewCatalog()

	for _, id := range []string{"translate", "slang", "revise", "polish", "expand", "summarize", "midjourney", "stablediffusion", "custom"} {
		require.True(t, c.Known(id), id)
		out, err := c.Resolve(id, "German", "")
		require.NoError(t, err, id)
		require.False(t, strings.Contains(out, "{target_language}"), "placeholder left in %s template", id)
	}
}
