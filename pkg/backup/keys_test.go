package backup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStableKey(t *testing.T) {
	home := "/home/alice"

	assert.Equal(t, "HOME%%.config%%hypr", StableKey(home, "/home/alice/.config/hypr"))
	assert.Equal(t, "HOME%%.local%%bin%%powermenu", StableKey(home, "/home/alice/.local/bin/powermenu"))
	assert.Equal(t, "HOME", StableKey(home, "/home/alice"))
}

func TestStableKeyOutsideHome(t *testing.T) {
	// a destination outside home keeps its full path, separators replaced
	assert.Equal(t, "%%etc%%hypr", StableKey("/home/alice", "/etc/hypr"))
}

func TestStableKeyDoesNotMatchHomePrefixSiblings(t *testing.T) {
	// /home/alicedata must not be rewritten as if it were under /home/alice
	assert.Equal(t, "%%home%%alicedata%%x", StableKey("/home/alice", "/home/alicedata/x"))
}

func TestLegacyKey(t *testing.T) {
	assert.Equal(t, "hypr", LegacyKey("/home/alice/.config/hypr"))
	assert.Equal(t, "powermenu", LegacyKey("/home/alice/.local/bin/powermenu"))
}

func TestKeysOrderNewestFirst(t *testing.T) {
	keys := Keys("/home/alice", "/home/alice/.config/hypr")
	assert.Equal(t, []string{"HOME%%.config%%hypr", "hypr"}, keys)
}
