package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/asimation/cglog"
	"github.com/asimation/cglog/hostdialog"
	"github.com/asimation/cglog/logcfg"
	"github.com/asimation/cglog/severity"
	"github.com/asimation/cglog/version"
)

// runOptions holds the root command's flag values.
type runOptions struct {
	name     string
	level    string
	config   string
	file     string
	noDialog bool
	desktop  bool
	noColor  bool
}

// bindFlags registers the logging flags on a flag set. Split out so wrapper
// commands can reuse the same flags.
func bindFlags(fs *pflag.FlagSet, opts *runOptions) {
	fs.StringVarP(&opts.name, "name", "n", "cglog", "logger name")
	fs.StringVarP(&opts.level, "level", "l", severity.Info.String(), "severity of the message")
	fs.StringVar(&opts.config, "config", "", "path to a YAML logging config")
	fs.StringVar(&opts.file, "file", "", "also append output to this file")
	fs.BoolVar(&opts.noDialog, "no-dialog", false, "never raise host dialogs")
	fs.BoolVar(&opts.desktop, "desktop", false, "fall back to desktop alerts outside a host")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable colorized level tags")
}

func newRootCmd() *cobra.Command {
	info := version.New("cglog")
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "cglog [flags] message ...",
		Short: "Log a message with pipeline logging conventions",
		Long: `cglog emits a timestamped, level-tagged line the way pipeline tools do,
so shell scripts and farm wrappers share one log format. CRITICAL messages
raise a dialog in a detected Maya or Nuke session.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStderr(), opts, strings.Join(args, " "))
		},
	}
	bindFlags(cmd.Flags(), opts)
	cmd.AddCommand(version.NewCommand(info, nil))
	return cmd
}

// run builds a fresh registry, applies config, and logs one message.
func run(out io.Writer, opts *runOptions, message string) error {
	level, err := severity.Parse(opts.level)
	if err != nil {
		return err
	}

	var cfg *logcfg.Config
	if opts.config != "" {
		cfg, err = logcfg.Load(opts.config)
	} else {
		cfg, err = logcfg.LoadEnv()
	}
	if err != nil {
		return err
	}

	reg := cglog.NewRegistry()
	if err := cfg.Apply(reg); err != nil {
		return err
	}

	logOpts := []cglog.Option{cglog.WithWriter(out)}
	if opts.noColor {
		logOpts = append(logOpts, cglog.WithColor(false))
	}
	if opts.file != "" {
		logOpts = append(logOpts, cglog.WithFile(opts.file))
	}
	if opts.noDialog || cfg.Dialogs.Disabled {
		logOpts = append(logOpts, cglog.WithoutHostDialog())
	}
	if opts.desktop {
		logOpts = append(logOpts, cglog.WithDesktopAlerts())
	}
	if cfg.Dialogs.PerMinute > 0 {
		guard := hostdialog.DefaultGuardConfig()
		guard.DialogsPerMinute = cfg.Dialogs.PerMinute
		if cfg.Dialogs.Burst > 0 {
			guard.Burst = cfg.Dialogs.Burst
		}
		logOpts = append(logOpts, cglog.WithDialogGuard(guard))
	}

	lg, err := reg.GetLogger(opts.name, logOpts...)
	if err != nil {
		return err
	}

	// Messages are emitted even when below the logger's threshold; the
	// command exists to put a line in the log, not to filter it.
	if level < lg.Level() {
		if err := lg.SetLevel(level); err != nil {
			return err
		}
	}
	if err := lg.Log(level, "%s", message); err != nil {
		return fmt.Errorf("failed to log message: %w", err)
	}
	return nil
}
