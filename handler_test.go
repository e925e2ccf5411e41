package cglog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/asimation/cglog/severity"
)

func testRecord(msg string) Record {
	return Record{
		Time:    time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		Level:   severity.Warning,
		Logger:  "render",
		Message: msg,
	}
}

func TestStreamHandlerPlain(t *testing.T) {
	var buf bytes.Buffer
	h := NewStreamHandler(&buf, false)

	if err := h.Emit(testRecord("frame dropped")); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	want := "[2026-03-14 15:09:26] [WARNING] render: frame dropped\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestStreamHandlerColor(t *testing.T) {
	var buf bytes.Buffer
	h := NewStreamHandler(&buf, true)

	if err := h.Emit(testRecord("frame dropped")); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, colorYellow+"WARNING"+colorReset) {
		t.Errorf("expected colored WARNING tag, got %q", out)
	}
	if !strings.Contains(out, "render: frame dropped") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestLevelColor(t *testing.T) {
	tests := []struct {
		level    severity.Level
		expected string
	}{
		{severity.Debug, colorCyan},
		{severity.Info, colorGreen},
		{severity.Warning, colorYellow},
		{severity.Error, colorRed},
		{severity.Critical, colorBrightRed},
	}
	for _, tt := range tests {
		if got := levelColor(tt.level); got != tt.expected {
			t.Errorf("levelColor(%v) = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestWriterIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	if writerIsTerminal(&buf) {
		t.Error("expected buffer to not be a terminal")
	}
}

func TestFileHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tool.log")
	h, err := newFileHandler(path)
	if err != nil {
		t.Fatalf("newFileHandler failed: %v", err)
	}

	if err := h.Emit(testRecord("first")); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if err := h.Emit(testRecord("second")); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines in file, got %d: %q", len(lines), string(data))
	}
	if !strings.Contains(lines[0], "first") || !strings.Contains(lines[1], "second") {
		t.Errorf("unexpected file contents: %q", string(data))
	}
}

func TestFileHandlerBadPath(t *testing.T) {
	if _, err := newFileHandler(filepath.Join(t.TempDir(), "missing", "tool.log")); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestDialogHandlerBelowCritical(t *testing.T) {
	stub := &stubAdapter{available: true}
	h := newDialogHandler(stub)

	rec := testRecord("just a warning")
	if err := h.Emit(rec); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if stub.calls != 0 {
		t.Errorf("expected no dialog below CRITICAL, got %d calls", stub.calls)
	}
}

func TestDialogHandlerTitle(t *testing.T) {
	stub := &stubAdapter{available: true}
	h := newDialogHandler(stub)

	rec := testRecord("broken")
	rec.Level = severity.Critical
	if err := h.Emit(rec); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if stub.lastTitle != "render CRITICAL" {
		t.Errorf("title = %q, want %q", stub.lastTitle, "render CRITICAL")
	}
	if stub.lastMsg != "broken" {
		t.Errorf("message = %q, want %q", stub.lastMsg, "broken")
	}
}
