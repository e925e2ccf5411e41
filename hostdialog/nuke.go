package hostdialog

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// EnvNukeCommandPort holds the TCP endpoint of the command server running
// inside the Nuke session, either "port" or "host:port".
const EnvNukeCommandPort = "NUKE_CMD_PORT"

// nukeAdapter raises dialogs through a Nuke session's command server using
// Python.
type nukeAdapter struct{}

func (a *nukeAdapter) Name() string { return "nuke" }

// Available reports whether a Nuke session advertises a command server.
func (a *nukeAdapter) Available() bool {
	return commandAddr(os.Getenv(EnvNukeCommandPort)) != ""
}

// ShowWarning raises a nuke.message dialog in the Nuke session. The call is
// routed through the main thread because Nuke UI calls are not safe from the
// command server's socket thread, and it blocks until dismissed.
func (a *nukeAdapter) ShowWarning(ctx context.Context, title, message string) error {
	addr := commandAddr(os.Getenv(EnvNukeCommandPort))
	if addr == "" {
		return fmt.Errorf("%w: %s not set", ErrNotAvailable, EnvNukeCommandPort)
	}
	text := title
	if message != "" {
		text = title + "\n\n" + message
	}
	py := fmt.Sprintf(
		`nuke.executeInMainThreadWithResult(nuke.message, args=('%s',))`,
		escapePy(text),
	)
	return sendCommand(ctx, addr, py)
}

// escapePy escapes a string for use inside a single-quoted Python literal.
func escapePy(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		"\n", `\n`,
		"\r", ``,
	)
	return r.Replace(s)
}
