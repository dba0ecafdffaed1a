package require_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/prysmaticlabs/blockrewards/testing/assertions"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

func TestRequire_UsesFatalf(t *testing.T) {
	tb := &assertions.TBMock{}
	require.Equal(tb, uint64(1), uint64(2))
	if tb.ErrorfMsg != "" {
		t.Errorf("require must not call Errorf, got: %q", tb.ErrorfMsg)
	}
	if !strings.Contains(tb.FatalfMsg, "Values are not equal, got: 2, want: 1") {
		t.Errorf("unexpected fatal message: %q", tb.FatalfMsg)
	}
}

func TestRequire_NoError(t *testing.T) {
	tb := &assertions.TBMock{}
	require.NoError(tb, nil)
	if tb.FatalfMsg != "" {
		t.Errorf("unexpected fatal: %q", tb.FatalfMsg)
	}
	require.NoError(tb, errors.New("bad state"), "Could not load state for slot %d", 5)
	if !strings.Contains(tb.FatalfMsg, "Could not load state for slot 5: bad state") {
		t.Errorf("unexpected fatal message: %q", tb.FatalfMsg)
	}
}
