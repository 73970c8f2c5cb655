package help_test

import (
	"testing"

	"github.com/hyprkit/hyprkit/pkg/help"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopics(t *testing.T) {
	topics, err := help.Topics()
	require.NoError(t, err)

	names := make([]string, len(topics))
	for i, topic := range topics {
		names[i] = topic.Name
		assert.NotEmpty(t, topic.Content)
	}
	assert.Equal(t, []string{"backups", "layout", "wiring"}, names)
}

func TestLookup(t *testing.T) {
	topic, err := help.Lookup("backups")
	require.NoError(t, err)
	assert.Contains(t, topic.Content, "manifest.yaml")

	_, err = help.Lookup("nonsense")
	assert.Error(t, err)
}

func TestPlainRenderer(t *testing.T) {
	out := help.PlainRenderer{}.Render("# Title\n\nbody\n")
	assert.Equal(t, "# Title\n\nbody\n", out)
}
