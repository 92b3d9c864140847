package pkg

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// InitLogger configures the process-wide logrus logger: JSON output with
// ISO 8601 timestamps, level taken from LOG_LEVEL (default info).
func InitLogger() {
	log.SetFormatter(&log.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
	log.SetOutput(os.Stdout)

	level, err := log.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
