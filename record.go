package cglog

import (
	"fmt"
	"time"

	"github.com/asimation/cglog/severity"
)

// timeLayout is the human-readable timestamp used in console and file lines.
const timeLayout = "2006-01-02 15:04:05"

// Record is a single log event handed to every attached handler.
type Record struct {
	Time    time.Time
	Level   severity.Level
	Logger  string
	Message string
}

// Line formats the record as one console/file line:
// [timestamp] [LEVEL] name: message
func (r Record) Line() string {
	return fmt.Sprintf("[%s] [%s] %s: %s", r.Time.Format(timeLayout), r.Level, r.Logger, r.Message)
}
