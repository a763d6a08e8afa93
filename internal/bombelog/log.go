// Package bombelog centralizes the zerolog setup shared by the cmd/enigma
// shell and the bombe farm's worker diagnostics, following the pattern in
// sergeii-swat4master/cmd/swat4master/logging (minus the fx wiring this
// module has no use for).
package bombelog

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console-formatted logger writing to w at the given level
// name ("debug", "info", "warn", "error"). An empty level defaults to info.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, err
	}
	zerolog.TimeFieldFormat = time.RFC3339
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}
