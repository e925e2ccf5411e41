package hostdialog

import (
	"context"
	"errors"
	"testing"
	"time"
)

// stubAdapter is a test implementation of Adapter.
type stubAdapter struct {
	name      string
	available bool
	err       error
	calls     int
	lastTitle string
	lastMsg   string
}

func (s *stubAdapter) Name() string    { return s.name }
func (s *stubAdapter) Available() bool { return s.available }

func (s *stubAdapter) ShowWarning(_ context.Context, title, message string) error {
	s.calls++
	s.lastTitle = title
	s.lastMsg = message
	return s.err
}

func TestGuardDelegates(t *testing.T) {
	stub := &stubAdapter{name: "maya", available: true}
	guard := NewGuard(stub, GuardConfig{})

	if guard.Name() != "maya" {
		t.Errorf("expected name 'maya', got %q", guard.Name())
	}
	if !guard.Available() {
		t.Error("expected guard to delegate availability")
	}
	if err := guard.ShowWarning(context.Background(), "title", "msg"); err != nil {
		t.Fatalf("ShowWarning failed: %v", err)
	}
	if stub.calls != 1 {
		t.Errorf("expected 1 adapter call, got %d", stub.calls)
	}
	if stub.lastMsg != "msg" {
		t.Errorf("expected message to pass through, got %q", stub.lastMsg)
	}
}

func TestGuardRateLimit(t *testing.T) {
	stub := &stubAdapter{name: "maya", available: true}
	guard := NewGuard(stub, GuardConfig{DialogsPerMinute: 1, Burst: 1})

	if err := guard.ShowWarning(context.Background(), "t", "first"); err != nil {
		t.Fatalf("first dialog should pass: %v", err)
	}
	err := guard.ShowWarning(context.Background(), "t", "second")
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
	if stub.calls != 1 {
		t.Errorf("expected rate limited call to skip the adapter, got %d calls", stub.calls)
	}
}

func TestGuardBreakerOpens(t *testing.T) {
	stub := &stubAdapter{name: "nuke", available: true, err: ErrDialogFailed}
	guard := NewGuard(stub, GuardConfig{BreakerFailures: 2, BreakerTimeout: time.Minute})

	for i := 0; i < 2; i++ {
		if err := guard.ShowWarning(context.Background(), "t", "m"); !errors.Is(err, ErrDialogFailed) {
			t.Fatalf("call %d: expected ErrDialogFailed, got %v", i, err)
		}
	}

	err := guard.ShowWarning(context.Background(), "t", "m")
	if !errors.Is(err, ErrNotAvailable) {
		t.Errorf("expected circuit-open error after repeated failures, got %v", err)
	}
	if stub.calls != 2 {
		t.Errorf("expected open circuit to skip the adapter, got %d calls", stub.calls)
	}
}

func TestGuardBreakerRecovers(t *testing.T) {
	stub := &stubAdapter{name: "nuke", available: true, err: ErrDialogFailed}
	guard := NewGuard(stub, GuardConfig{BreakerFailures: 1, BreakerTimeout: 10 * time.Millisecond})

	_ = guard.ShowWarning(context.Background(), "t", "m")
	if err := guard.ShowWarning(context.Background(), "t", "m"); !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("expected open circuit, got %v", err)
	}

	stub.err = nil
	time.Sleep(20 * time.Millisecond)

	if err := guard.ShowWarning(context.Background(), "t", "m"); err != nil {
		t.Errorf("expected probe call to succeed after cool-off, got %v", err)
	}
}
