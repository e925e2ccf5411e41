// Command cglog logs a message from shell scripts and render-farm wrappers
// using the same named loggers, levels, and host dialogs that pipeline tools
// use from Go code.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
