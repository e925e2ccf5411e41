package cglog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/asimation/cglog/hostdialog"
	"github.com/asimation/cglog/severity"
	"golang.org/x/term"
)

// Handler is a sink that performs one output side effect for a log record.
// Emit errors are recorded by the logger and never surfaced to the caller.
type Handler interface {
	Emit(Record) error
}

// ANSI color codes for the level tag.
const (
	colorReset     = "\033[0m"
	colorCyan      = "\033[36m"
	colorGreen     = "\033[32m"
	colorYellow    = "\033[33m"
	colorRed       = "\033[31m"
	colorBrightRed = "\033[91m"
)

// StreamHandler writes formatted lines to a console writer.
// Safe for concurrent use.
type StreamHandler struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

// NewStreamHandler returns a handler writing to w, colorizing the level tag
// when color is true.
func NewStreamHandler(w io.Writer, color bool) *StreamHandler {
	return &StreamHandler{w: w, color: color}
}

// Emit writes one formatted line.
func (h *StreamHandler) Emit(r Record) error {
	line := r.Line()
	if h.color {
		line = fmt.Sprintf("[%s] [%s%s%s] %s: %s",
			r.Time.Format(timeLayout), levelColor(r.Level), r.Level, colorReset, r.Logger, r.Message)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.w, line)
	return err
}

func levelColor(l severity.Level) string {
	switch {
	case l >= severity.Critical:
		return colorBrightRed
	case l >= severity.Error:
		return colorRed
	case l >= severity.Warning:
		return colorYellow
	case l >= severity.Info:
		return colorGreen
	default:
		return colorCyan
	}
}

// writerIsTerminal reports whether w is an interactive terminal.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// fileHandler appends formatted lines to a log file.
type fileHandler struct {
	mu sync.Mutex
	f  *os.File
}

func newFileHandler(path string) (*fileHandler, error) {
	// #nosec G304 -- caller controls the log path
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return &fileHandler{f: f}, nil
}

func (h *fileHandler) Emit(r Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.f, r.Line())
	return err
}

// dialogHandler raises a host dialog for records at CRITICAL and above.
// Lower severities are a no-op: warnings and errors stay console-only.
type dialogHandler struct {
	adapter hostdialog.Adapter
}

func newDialogHandler(adapter hostdialog.Adapter) *dialogHandler {
	return &dialogHandler{adapter: adapter}
}

func (h *dialogHandler) Emit(r Record) error {
	if r.Level < severity.Critical {
		return nil
	}

	title := fmt.Sprintf("%s %s", r.Logger, r.Level)
	recordDialog(h.adapter.Name())
	if err := h.adapter.ShowWarning(context.Background(), title, r.Message); err != nil {
		recordDialogFailure(h.adapter.Name())
		// The console handler already emitted; a dialog failure must not
		// replace or suppress the caller's own error flow.
		slog.Debug("host dialog failed", "host", h.adapter.Name(), "error", err)
		return err
	}
	return nil
}
