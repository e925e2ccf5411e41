package hostdialog

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Environment variable names for the Maya integration.
const (
	// EnvMayaCommandPort holds the commandPort endpoint of the running Maya
	// session, either "port" or "host:port". Opened on the Maya side with
	// `commandPort -name ":7005"`.
	EnvMayaCommandPort = "MAYA_CMD_PORT"

	// EnvMayaBatch marks a batch (mayapy / Render) session. Batch sessions
	// have no UI, so dialogs are unavailable.
	EnvMayaBatch = "MAYA_BATCH"
)

// mayaAdapter raises dialogs through Maya's commandPort using MEL.
type mayaAdapter struct{}

func (a *mayaAdapter) Name() string { return "maya" }

// Available reports whether an interactive Maya session advertises a
// command port.
func (a *mayaAdapter) Available() bool {
	if os.Getenv(EnvMayaBatch) != "" {
		return false
	}
	return commandAddr(os.Getenv(EnvMayaCommandPort)) != ""
}

// ShowWarning raises a confirmDialog in the Maya session. confirmDialog is
// modal, so the command port does not answer until the user dismisses it.
func (a *mayaAdapter) ShowWarning(ctx context.Context, title, message string) error {
	addr := commandAddr(os.Getenv(EnvMayaCommandPort))
	if addr == "" {
		return fmt.Errorf("%w: %s not set", ErrNotAvailable, EnvMayaCommandPort)
	}
	mel := fmt.Sprintf(
		`confirmDialog -title "%s" -message "%s" -button "Dismiss" -messageAlign "left";`,
		escapeMEL(title), escapeMEL(message),
	)
	return sendCommand(ctx, addr, mel)
}

// escapeMEL escapes a string for use inside a double-quoted MEL literal.
func escapeMEL(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", ``,
	)
	return r.Replace(s)
}
