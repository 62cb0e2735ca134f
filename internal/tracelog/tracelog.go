// Package tracelog is a leveled, colorized console logger for the
// castability CLI's decision tracing, adapted from
// GalacticBonsai-MTGSim/src/logger.go's combat logger.
package tracelog

import (
	"fmt"
	"log"
	"os"
)

// Level is a logging severity, ordered lowest to highest.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var names = map[string]Level{
	"DEBUG": Debug,
	"INFO":  Info,
	"WARN":  Warn,
	"ERROR": Error,
}

// ParseLevel maps a level name to a Level, defaulting to Info for an
// unrecognized string.
func ParseLevel(s string) Level {
	if l, ok := names[s]; ok {
		return l
	}
	return Info
}

var current = Info

// SetLevel sets the minimum level that will be printed.
func SetLevel(l Level) {
	current = l
}

func colorize(l Level, s string) string {
	var color string
	switch l {
	case Debug:
		color = "\033[36m" // Cyan
	case Info:
		color = "\033[32m" // Green
	case Warn:
		color = "\033[33m" // Yellow
	case Error:
		color = "\033[31m" // Red
	}
	return fmt.Sprintf("%s%s\033[0m", color, s)
}

func logf(l Level, format string, args ...interface{}) {
	if current > l {
		return
	}
	log.Println(colorize(l, fmt.Sprintf(format, args...)))
}

// Debugf logs a decision-tracing message at debug level (extra detail, such
// as the pool size once sideboard lands are added).
func Debugf(format string, args ...interface{}) { logf(Debug, format, args...) }

// Infof logs a decision-tracing message at info level (major steps: card
// data loaded, decklist parsed).
func Infof(format string, args ...interface{}) { logf(Info, format, args...) }

// Warnf logs a recoverable anomaly.
func Warnf(format string, args ...interface{}) { logf(Warn, format, args...) }

// Errorf logs a message before the CLI aborts.
func Errorf(format string, args ...interface{}) { logf(Error, format, args...) }

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stdout)
}
