// Package logger adapts logrus to the ports.Logger interface.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLogger routes structured application logs to stderr so they never
// mix with command output or resolved branch names on stdout.
type LogrusLogger struct {
	log *logrus.Logger
}

// New creates a LogrusLogger. Verbose lowers the level to Debug.
func New(verbose bool) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return &LogrusLogger{log: l}
}

func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *LogrusLogger) Error(msg string, err error, fields map[string]interface{}) {
	entry := l.log.WithFields(logrus.Fields(fields))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}
