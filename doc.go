// Package cglog provides named, leveled loggers for CG pipeline tools that
// run in plain shells or embedded in Maya and Nuke.
//
// Every logger writes timestamped, level-tagged lines to the console. When
// the process is detected to be running inside a supported host application,
// critical and fatal records additionally raise the host's native modal
// warning dialog so an artist cannot miss them. Host integration is best
// effort: detection and dialog failures degrade to console-only logging and
// are never surfaced through the logging calls.
//
// # Basic Usage
//
//	log, err := cglog.GetLogger("mytool")
//	if err != nil {
//		// handle error
//	}
//	log.Info("log something")
//
//	// Set level to debug
//	log, err := cglog.GetLogger("mytool", cglog.WithLevel(severity.Debug))
//	// OR
//	_ = log.SetLevel(severity.Debug)
//
// # Alerting the User
//
// Fatal and Critical log a console line and, inside a host, pop a modal
// dialog. Logging does not replace error propagation: the caller re-raises
// after logging.
//
//	if err := doSomething(); err != nil {
//		log.Fatal("pop up this message if we're in nuke or maya: %v", err)
//		return err // propagate after the user was alerted
//	}
//
// GetLogger returns the same instance for the same name for the life of the
// process. All loggers are safe for concurrent use.
package cglog
