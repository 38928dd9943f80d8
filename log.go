package concentric

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns a human-readable logger writing to w.
func NewLogger(w io.Writer) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	return zerolog.New(consoleWriter).With().Timestamp().Logger()
}
