package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a timestamped logger writing to w. LOG_LEVEL selects
// the level (debug, info, warn, error); the default is info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if value := GetEnv("LOG_LEVEL", ""); value != "" {
		level, err := log.ParseLevel(value)
		if err != nil {
			logger.Warn("invalid LOG_LEVEL, using info", "value", value)
		} else {
			logger.SetLevel(level)
		}
	}
	return logger
}
