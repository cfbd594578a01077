package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// serviceName tags every line so frontend output stays distinguishable
// from the backend's when both land in the same aggregator.
const serviceName = "brightway-frontend"

// Setup initializes the process logger.
//   - level: trace, debug, info, warn, error, fatal, panic (default info)
//   - format: "json" for machine-readable production output; anything
//     else renders the human-readable console form
func Setup(level, format string) zerolog.Logger {
	var writer io.Writer = os.Stdout
	if format != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(writer).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}
