// Package logging configures the logrus formatters, verbosity and the
// optional log file shared by every command.
package logging

import (
	"fmt"

	joonix "github.com/joonix/log"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Formats lists the supported values of the log format flag.
var Formats = []string{"text", "fluentd", "json"}

// Configure sets the global logrus level and formatter. A non-empty logFileName additionally
// mirrors every entry to that file.
func Configure(format, verbosity, logFileName string) error {
	level, err := logrus.ParseLevel(verbosity)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	switch format {
	case "text":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		// If persistent log files are written - we disable the log messages coloring because
		// the colors are ANSI codes and seen as gibberish in the log files.
		formatter.DisableColors = logFileName != ""
		logrus.SetFormatter(formatter)
	case "fluentd":
		logrus.SetFormatter(joonix.NewFormatter())
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %s", format)
	}

	if logFileName != "" {
		if err := ConfigurePersistentLogging(logFileName, format); err != nil {
			logrus.WithError(err).Error("Failed to configuring logging to disk.")
		}
	}
	return nil
}
