// Package severity defines the ordered severity levels shared by the cglog
// packages. Levels carry the conventional numeric ranks so thresholds can be
// compared directly.
package severity

import (
	"errors"
	"fmt"
	"strings"
)

// Level classifies log message importance. Higher values are more severe.
type Level int

const (
	// NotSet is the zero value. It is not a usable threshold or message
	// severity; passing it where a level is required yields ErrInvalidLevel.
	NotSet Level = 0
	// Debug is for verbose diagnostic information.
	Debug Level = 10
	// Info is for normal operational events.
	Info Level = 20
	// Warning is for unexpected conditions that don't prevent operation.
	Warning Level = 30
	// Error is for failures that affect functionality.
	Error Level = 40
	// Critical is for failures that must grab user attention.
	Critical Level = 50

	// Warn is an alias for Warning.
	Warn = Warning
	// Fatal is an alias for Critical.
	Fatal = Critical
)

// ErrInvalidLevel is returned when a value is not one of the defined levels.
var ErrInvalidLevel = errors.New("invalid severity level")

// All returns the defined levels in ascending order.
func All() []Level {
	return []Level{Debug, Info, Warning, Error, Critical}
}

// String returns the uppercase name of the level.
func (l Level) String() string {
	switch l {
	case NotSet:
		return "NOTSET"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Critical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Valid reports whether l is one of the defined severity levels.
func (l Level) Valid() bool {
	switch l {
	case Debug, Info, Warning, Error, Critical:
		return true
	default:
		return false
	}
}

// Validate returns ErrInvalidLevel wrapped with the offending value when l
// is not a defined severity level.
func (l Level) Validate() error {
	if !l.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return nil
}

// Parse parses a level name (case-insensitive). "WARN" and "FATAL" are
// accepted as aliases for WARNING and CRITICAL.
func Parse(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "WARN", "WARNING":
		return Warning, nil
	case "ERROR":
		return Error, nil
	case "CRITICAL", "FATAL":
		return Critical, nil
	default:
		return NotSet, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}
