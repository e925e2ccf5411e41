package hostdialog

import (
	"context"

	"github.com/gen2brain/beeep"
)

// desktopAdapter raises OS desktop alerts via beeep. It is the opt-in
// fallback for plain shell sessions where no host application is present;
// unlike the host adapters it does not block until acknowledged.
type desktopAdapter struct{}

// Desktop returns an adapter that shows OS desktop alerts instead of host
// dialogs.
func Desktop() Adapter {
	return desktopAdapter{}
}

func (desktopAdapter) Name() string { return "desktop" }

// Available returns true; beeep handles platform detection internally.
func (desktopAdapter) Available() bool { return true }

// ShowWarning sends a desktop alert.
func (desktopAdapter) ShowWarning(_ context.Context, title, message string) error {
	return beeep.Alert(title, message, "")
}
