package flags

import (
	"flag"
	"testing"

	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

func TestEnumValue(t *testing.T) {
	e := &EnumValue{Enum: []string{"table", "json"}, selected: "table"}
	assert.Equal(t, "table", e.String())
	require.NoError(t, e.Set("JSON"))
	assert.Equal(t, "json", e.String())
	assert.ErrorContains(t, `"xml" is not one of table, json`, e.Set("xml"))
	assert.Equal(t, "json", e.String())
}

func TestNewEnumFlag(t *testing.T) {
	f := NewEnumFlag("fmt", "Pick one.", "a", "b")
	assert.Equal(t, `Pick one. Supports: a, b. (default: "a")`, f.Usage)
	assert.Equal(t, "a", f.Value.String())

	defer func() {
		assert.NotNil(t, recover())
	}()
	NewEnumFlag("empty", "No values.")
}

func TestEnumValue_GenericFlag(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, OutputFormat.Apply(set))
	require.NoError(t, set.Parse([]string{"--output", "json"}))
	ctx := cli.NewContext(&cli.App{}, set, nil)
	assert.Equal(t, "json", ctx.Generic(OutputFormat.Name).(*EnumValue).String())
	assert.NotNil(t, set.Parse([]string{"--output", "xml"}))
}

func TestWrapFlags(t *testing.T) {
	wrapped := WrapFlags([]cli.Flag{VerbosityFlag, MinimalConfigFlag, WorkersFlag, EndSlotFlag, TraceSampleFractionFlag, HTTPTimeoutFlag, LogFormat})
	require.Equal(t, 7, len(wrapped))
	_, ok := wrapped[0].(*altsrc.StringFlag)
	assert.Equal(t, true, ok)
	_, ok = wrapped[1].(*altsrc.BoolFlag)
	assert.Equal(t, true, ok)
	_, ok = wrapped[6].(*altsrc.GenericFlag)
	assert.Equal(t, true, ok)
	assert.Equal(t, "verbosity", wrapped[0].Names()[0])
}

func TestWrapFlags_Unsupported(t *testing.T) {
	defer func() {
		assert.NotNil(t, recover())
	}()
	WrapFlags([]cli.Flag{&cli.Int64Flag{Name: "bad"}})
}
