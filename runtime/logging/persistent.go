package logging

import (
	"fmt"
	"io"
	"os"

	joonix "github.com/joonix/log"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var _ = logrus.Hook(&WriterHook{})

// WriterHook is a hook that writes logs of specified LogLevels to specified Writer.
type WriterHook struct {
	LogLevels []logrus.Level
	Writer    io.Writer
	Formatter logrus.Formatter
}

// Fire will be called when some logging function is called with current hook.
// It will format log entry to string and write it to appropriate writer.
func (hook *WriterHook) Fire(entry *logrus.Entry) error {
	line, err := hook.Formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = hook.Writer.Write(line)
	return err
}

// Levels defines on which log levels this hook would trigger.
func (hook *WriterHook) Levels() []logrus.Level {
	return hook.LogLevels
}

// ConfigurePersistentLogging adds a log-to-file writer hook to the logrus logger. The writer hook appends new
// logs to the specified log file.
func ConfigurePersistentLogging(logFileName string, logFileFormatName string) error {
	logrus.WithField("logFileName", logFileName).Info("Logs will be made persistent")
	formatter, err := fileFormatter(logFileFormatName)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}

	logrus.AddHook(&WriterHook{
		LogLevels: logrus.AllLevels,
		Writer:    f,
		Formatter: formatter,
	})
	logrus.Info("File logger initialized")
	return nil
}

func fileFormatter(name string) (logrus.Formatter, error) {
	switch name {
	case "text":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		formatter.DisableColors = true
		return formatter, nil
	case "fluentd":
		return joonix.NewFormatter(), nil
	case "json":
		return &logrus.JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown log file format %v", name)
	}
}
