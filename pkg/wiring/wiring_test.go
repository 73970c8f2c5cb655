package wiring_test

import (
	"strings"
	"testing"

	"github.com/hyprkit/hyprkit/pkg/wiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCoversAllIntegrations(t *testing.T) {
	assert.Equal(t,
		[]string{"wallpaper", "power-menu", "wlogout", "emergency-exit", "screenshots"},
		wiring.Names())
}

func TestBlockNamesAreUniqueAndDelimiterSafe(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range wiring.Blocks() {
		require.False(t, seen[b.Name], "duplicate block name %s", b.Name)
		seen[b.Name] = true

		// names end up inside delimiter lines, keep them single-line and flat
		assert.NotContains(t, b.Name, "\n")
		assert.NotContains(t, b.Name, " ")
		assert.NotEmpty(t, b.LegacySubstring)
	}
}

func TestBodiesHaveNoTrailingNewline(t *testing.T) {
	for _, b := range wiring.Blocks() {
		assert.False(t, strings.HasSuffix(b.Body, "\n"), "%s body should not end in a newline", b.Name)
	}
}
