package version_test

import (
	"testing"

	"github.com/prysmaticlabs/blockrewards/runtime/version"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

func TestVersion_String(t *testing.T) {
	names := make(map[string]bool)
	for _, v := range version.All() {
		name := version.String(v)
		assert.NotEqual(t, "unknown version", name)
		assert.Equal(t, false, names[name], "duplicate name %s", name)
		names[name] = true
	}
	assert.Equal(t, "altair", version.String(version.Altair))
}

func TestVersion_AllAscending(t *testing.T) {
	all := version.All()
	require.Equal(t, version.Deneb+1, len(all))
	for i, v := range all {
		assert.Equal(t, i, v)
	}
}

func TestVersion_Unknown(t *testing.T) {
	assert.Equal(t, "unknown version", version.String(99))
	assert.Equal(t, "unknown version", version.String(-1))
}
