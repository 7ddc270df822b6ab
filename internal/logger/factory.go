package logger

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Quiet returns a logger that drops everything, for tests and embedding.
func Quiet() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseFormatter maps a config name to a formatter, text by default.
func ParseFormatter(name string) log.Formatter {
	switch strings.ToLower(name) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	}
	return log.TextFormatter
}
