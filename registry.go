package cglog

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/asimation/cglog/hostdialog"
	"github.com/asimation/cglog/hostenv"
	"github.com/asimation/cglog/severity"
)

// Registry holds the process-wide mapping from name to Logger. A Registry
// starts empty and lives for the process lifetime; loggers are never
// removed. Safe for concurrent use.
type Registry struct {
	mu             sync.Mutex
	loggers        map[string]*Logger
	defaultLevel   severity.Level
	levelOverrides map[string]severity.Level
}

// NewRegistry returns an empty registry with an INFO default threshold.
// Most callers use the package-level Default registry; tests construct
// their own for isolation.
func NewRegistry() *Registry {
	return &Registry{
		loggers:        make(map[string]*Logger),
		defaultLevel:   severity.Info,
		levelOverrides: make(map[string]severity.Level),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the package-level registry used by GetLogger.
func Default() *Registry { return defaultRegistry }

// GetLogger returns the logger with the given name from the default
// registry, creating and configuring it on first request. Repeat calls with
// the same name return the same instance and ignore the options.
func GetLogger(name string, opts ...Option) (*Logger, error) {
	return defaultRegistry.GetLogger(name, opts...)
}

// GetLogger returns the named logger, creating it on first request. The
// name must be non-empty. Option errors (such as an invalid level) are
// returned before any registry entry is created.
func (r *Registry) GetLogger(name string, opts ...Option) (*Logger, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("logger name must be a non-empty identifier")
	}

	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if lg, ok := r.loggers[name]; ok {
		return lg, nil
	}

	level := cfg.level
	if level == severity.NotSet {
		if override, ok := r.levelOverrides[name]; ok {
			level = override
		} else {
			level = r.defaultLevel
		}
	}

	lg := &Logger{name: name, level: level, now: time.Now}

	w := cfg.writer
	if w == nil {
		w = os.Stderr
	}
	color := cfg.color
	if !cfg.colorSet {
		color = writerIsTerminal(w)
	}
	lg.handlers = append(lg.handlers, NewStreamHandler(w, color))

	if cfg.filePath != "" {
		fh, err := newFileHandler(cfg.filePath)
		if err != nil {
			return nil, err
		}
		lg.handlers = append(lg.handlers, fh)
	}

	if !cfg.noDialog {
		if adapter := dialogAdapter(cfg); adapter != nil {
			guard := hostdialog.DefaultGuardConfig()
			if cfg.guard != nil {
				guard = *cfg.guard
			}
			lg.handlers = append(lg.handlers, newDialogHandler(hostdialog.NewGuard(adapter, guard)))
		}
	}

	r.loggers[name] = lg
	return lg, nil
}

// dialogAdapter picks at most one dialog adapter for a new logger. Host
// detection failures of any kind downgrade to "no host".
func dialogAdapter(cfg options) hostdialog.Adapter {
	if cfg.adapter != nil {
		if cfg.adapter.Available() {
			return cfg.adapter
		}
		return nil
	}

	detect := cfg.detect
	if detect == nil {
		detect = hostenv.Cached
	}
	if kind := detect(); kind != hostenv.None {
		if adapter := hostdialog.New(kind); adapter.Available() {
			return adapter
		}
	}

	if cfg.desktopAlerts {
		return hostdialog.Desktop()
	}
	return nil
}

// Lookup returns the named logger without creating one.
func (r *Registry) Lookup(name string) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lg, ok := r.loggers[name]
	return lg, ok
}

// Names returns the names of all registered loggers, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetDefaultLevel sets the threshold applied to loggers created without an
// explicit level. Existing loggers are unaffected.
func (r *Registry) SetDefaultLevel(level severity.Level) error {
	if err := level.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	r.defaultLevel = level
	r.mu.Unlock()
	return nil
}

// SetLoggerLevel sets the threshold for one named logger. It applies to the
// existing logger if present and is remembered for a future one otherwise.
func (r *Registry) SetLoggerLevel(name string, level severity.Level) error {
	if err := level.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	lg, ok := r.loggers[name]
	if !ok {
		r.levelOverrides[name] = level
	}
	r.mu.Unlock()

	if ok {
		return lg.SetLevel(level)
	}
	return nil
}

// Option configures a logger at construction time.
type Option func(*options)

type options struct {
	level         severity.Level
	writer        io.Writer
	color         bool
	colorSet      bool
	filePath      string
	detect        func() hostenv.Kind
	adapter       hostdialog.Adapter
	noDialog      bool
	desktopAlerts bool
	guard         *hostdialog.GuardConfig
	err           error
}

// WithLevel sets the initial severity threshold. Invalid levels make
// GetLogger fail without creating a registry entry.
func WithLevel(level severity.Level) Option {
	return func(o *options) {
		if err := level.Validate(); err != nil {
			o.err = err
			return
		}
		o.level = level
	}
}

// WithWriter redirects console output, e.g. to a buffer in tests. The
// default is stderr.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.writer = w }
}

// WithColor forces colorized level tags on or off. The default follows
// terminal detection on the console writer.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
		o.colorSet = true
	}
}

// WithFile additionally appends every emitted line to the given file.
func WithFile(path string) Option {
	return func(o *options) { o.filePath = path }
}

// WithDetector overrides host detection for this logger.
func WithDetector(detect func() hostenv.Kind) Option {
	return func(o *options) { o.detect = detect }
}

// WithAdapter binds a specific dialog adapter instead of detecting the
// host. The adapter is still skipped when it reports itself unavailable.
func WithAdapter(adapter hostdialog.Adapter) Option {
	return func(o *options) { o.adapter = adapter }
}

// WithoutHostDialog disables dialog attachment entirely.
func WithoutHostDialog() Option {
	return func(o *options) { o.noDialog = true }
}

// WithDesktopAlerts attaches an OS desktop alert handler when no host
// application is detected.
func WithDesktopAlerts() Option {
	return func(o *options) { o.desktopAlerts = true }
}

// WithDialogGuard overrides the rate-limit and circuit-breaker settings
// applied to the dialog handler.
func WithDialogGuard(cfg hostdialog.GuardConfig) Option {
	return func(o *options) { o.guard = &cfg }
}
