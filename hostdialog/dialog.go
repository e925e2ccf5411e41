// Package hostdialog raises native modal warning dialogs inside supported
// host applications. Each host is wrapped in an Adapter that reports its own
// availability and returns explicit errors instead of failing silently;
// callers decide whether to discard or log those errors.
package hostdialog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/asimation/cglog/hostenv"
)

// Adapter is the uniform surface over a host application's native modal
// warning API.
type Adapter interface {
	// Name identifies the adapter in logs and metrics ("maya", "nuke", ...).
	Name() string

	// Available reports whether the host's dialog API is reachable from
	// this process right now.
	Available() bool

	// ShowWarning raises a modal warning dialog with the given title and
	// message, blocking until the user dismisses it or ctx expires.
	ShowWarning(ctx context.Context, title, message string) error
}

var (
	// ErrNotAvailable means the host's dialog API cannot be reached.
	ErrNotAvailable = errors.New("host dialog not available")
	// ErrDialogFailed means the host accepted the connection but the dialog
	// call itself failed.
	ErrDialogFailed = errors.New("host dialog call failed")
	// ErrRateLimited means a guard dropped the dialog to avoid a storm of
	// modal popups. The console line is unaffected.
	ErrRateLimited = errors.New("host dialog rate limited")
)

// defaultTimeout bounds the command-port round trip when the caller's
// context carries no deadline. Modal dialogs block until dismissed, so this
// is deliberately generous.
const defaultTimeout = 10 * time.Minute

// New returns the adapter for the given host kind. For hostenv.None (and
// unknown kinds) it returns a no-op adapter that is always available.
func New(kind hostenv.Kind) Adapter {
	switch kind {
	case hostenv.Maya:
		return &mayaAdapter{}
	case hostenv.Nuke:
		return &nukeAdapter{}
	default:
		return noneAdapter{}
	}
}

// noneAdapter is the no-host variant: always available, no side effect.
type noneAdapter struct{}

func (noneAdapter) Name() string      { return "none" }
func (noneAdapter) Available() bool   { return true }
func (noneAdapter) ShowWarning(context.Context, string, string) error { return nil }

// sendCommand delivers one command to a host's command port and waits for
// the reply. Hosts answer after the command has run, which for a modal
// dialog means after the user dismissed it.
func sendCommand(ctx context.Context, addr, payload string) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrNotAvailable, addr, err)
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := io.WriteString(conn, payload+"\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrDialogFailed, err)
	}

	buf := make([]byte, 512)
	if _, err := conn.Read(buf); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrDialogFailed, err)
	}
	return nil
}

// commandAddr resolves a command-port environment value into a dialable
// address. A bare port number targets localhost.
func commandAddr(value string) string {
	if value == "" {
		return ""
	}
	if strings.Contains(value, ":") {
		return value
	}
	return "localhost:" + value
}
