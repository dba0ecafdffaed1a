package tracing

import (
	"testing"

	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

func TestSetup_Disabled(t *testing.T) {
	flush, err := Setup("", "", "", 0, false)
	require.NoError(t, err)
	flush()
}

func TestSetup_Validation(t *testing.T) {
	_, err := Setup("", "blockrewards", "http://127.0.0.1:14268/api/traces", 0.2, true)
	assert.ErrorContains(t, "tracing service name cannot be empty", err)

	_, err = Setup("blockrewards", "blockrewards", "http://127.0.0.1:14268/api/traces", 1.5, true)
	assert.ErrorContains(t, "is not within [0, 1]", err)
}

func TestSetup_Enabled(t *testing.T) {
	flush, err := Setup("blockrewards", "serve", "http://127.0.0.1:14268/api/traces", 0.2, true)
	require.NoError(t, err)
	flush()
	_, err = Setup("", "", "", 0, false)
	require.NoError(t, err)
}
