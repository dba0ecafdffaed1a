package prometheus

import (
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/sirupsen/logrus"
)

func TestLogrusCollector_CountsByLevelAndPrefix(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(NewLogrusCollector())

	info := testutil.ToFloat64(logEntriesCounter.WithLabelValues("info", "rewards"))
	warn := testutil.ToFloat64(logEntriesCounter.WithLabelValues("warning", defaultPrefix))
	debug := testutil.ToFloat64(logEntriesCounter.WithLabelValues("debug", "rewards"))

	logger.WithField("prefix", "rewards").Info("info")
	logger.WithField("prefix", "rewards").Info("info")
	logger.Warn("warn")
	logger.WithField("prefix", "rewards").Debug("debug")

	assert.Equal(t, info+2, testutil.ToFloat64(logEntriesCounter.WithLabelValues("info", "rewards")))
	assert.Equal(t, warn+1, testutil.ToFloat64(logEntriesCounter.WithLabelValues("warning", defaultPrefix)))
	assert.Equal(t, debug, testutil.ToFloat64(logEntriesCounter.WithLabelValues("debug", "rewards")))
}

func TestLogrusCollector_PrefixNotString(t *testing.T) {
	hook := NewLogrusCollector()
	err := hook.Fire(&logrus.Entry{Level: logrus.InfoLevel, Data: logrus.Fields{"prefix": 1}})
	assert.ErrorContains(t, "prefix is not a string", err)
}
