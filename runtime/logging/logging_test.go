package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/prysmaticlabs/blockrewards/consensus-types/blocks"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
	"github.com/prysmaticlabs/blockrewards/testing/util"
	"github.com/sirupsen/logrus"
)

func resetLogrus(t *testing.T) {
	formatter := logrus.StandardLogger().Formatter
	level := logrus.GetLevel()
	hooks := make(logrus.LevelHooks)
	for lvl, hs := range logrus.StandardLogger().Hooks {
		hooks[lvl] = append(hooks[lvl], hs...)
	}
	t.Cleanup(func() {
		logrus.SetFormatter(formatter)
		logrus.SetLevel(level)
		logrus.StandardLogger().ReplaceHooks(hooks)
	})
}

func TestConfigure(t *testing.T) {
	resetLogrus(t)
	for _, format := range Formats {
		require.NoError(t, Configure(format, "debug", ""))
		assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	}
	assert.ErrorContains(t, "unknown log format xml", Configure("xml", "info", ""))
	assert.ErrorContains(t, "not a valid logrus Level", Configure("text", "loud", ""))
}

func TestConfigurePersistentLogging(t *testing.T) {
	resetLogrus(t)
	logFile := filepath.Join(t.TempDir(), "out.log")
	require.NoError(t, Configure("text", "info", logFile))

	logrus.WithField("prefix", "test").Info("persisted message")
	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Equal(t, true, bytes.Contains(content, []byte("persisted message")))

	assert.ErrorContains(t, "unknown log file format", ConfigurePersistentLogging(logFile, "xml"))
}

func TestBlockFields(t *testing.T) {
	b := util.NewBeaconBlock()
	b.Block.Slot = 12
	b.Block.ProposerIndex = 3
	wrapped, err := blocks.NewSignedBeaconBlock(b)
	require.NoError(t, err)

	fields := BlockFields([32]byte{0xab}, wrapped)
	assert.Equal(t, "0xab000000", fields["blockRoot"])
	assert.Equal(t, primitives.Slot(12), fields["slot"])
	assert.Equal(t, primitives.ValidatorIndex(3), fields["proposerIndex"])
	assert.Equal(t, 0, fields["attestations"])

	fields = BlockFields([32]byte{}, nil)
	assert.Equal(t, 1, len(fields))
}
