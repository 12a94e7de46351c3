// Package log add logging utilities.
package log

import (
	"strings"
	"time"

	"comms/internal/pkg/protocol"

	"github.com/sirupsen/logrus"
)

// SetLogger sets the default logger's level.
func SetLogger(level string) {
	customFormatter := new(logrus.TextFormatter)
	customFormatter.TimestampFormat = time.RFC3339
	customFormatter.FullTimestamp = true
	logrus.SetFormatter(customFormatter)
	logrus.SetLevel(ParseLevel(level))
}

// ParseLevel maps a level name to a logrus level, falling back to error.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.ErrorLevel
	}
}

func MessageToFields(msg protocol.Message) logrus.Fields {
	return logrus.Fields{
		"type": msg.Type.Header(),
		"load": msg.Load,
	}
}

func ResponseToFields(resp protocol.Response) logrus.Fields {
	fields := logrus.Fields{
		"response": resp.String(),
	}
	if resp.Kind == protocol.KindGetCount {
		fields["count"] = resp.Count
	}
	return fields
}
