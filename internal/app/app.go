// Package app provides the main application structure for the modal editor.
// It wires the editor state, renderer and terminal backend together and
// runs the render/poll/dispatch loop.
package app

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/modal/internal/config"
	"github.com/dshills/modal/internal/editor"
	"github.com/dshills/modal/internal/renderer"
	"github.com/dshills/modal/internal/renderer/backend"
)

// Application owns one editor session and the terminal it is drawn on.
// An Application runs once; after Run returns the backend has been shut down.
type Application struct {
	config *config.Config

	state    *editor.State
	renderer *renderer.Renderer
	backend  backend.Backend

	logger    *Logger
	logCloser io.Closer
	metrics   *Metrics
	session   string

	running      atomic.Bool
	shutdownOnce sync.Once

	opts Options
}

// Options configures the application. Non-zero fields override the
// configuration file.
type Options struct {
	// ConfigPath is the path to a TOML configuration file. Empty means
	// built-in defaults.
	ConfigPath string

	// LogFile is where log output goes. Empty means the configured file,
	// or no logging.
	LogFile string

	// LogLevel sets the logging verbosity.
	LogLevel string

	// PollInterval bounds the wait for input between renders. Nil keeps the
	// configured value; any other value is validated like the file setting.
	PollInterval *time.Duration
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		state:   editor.New(),
		metrics: NewMetrics(),
		session: uuid.NewString(),
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) bootstrap() error {
	cfg := config.Default()
	if app.opts.ConfigPath != "" {
		loaded, err := config.Load(app.opts.ConfigPath)
		if err != nil {
			return &InitError{Component: "config", Err: err}
		}
		cfg = loaded
	}

	if app.opts.LogFile != "" {
		cfg.Log.File = app.opts.LogFile
	}
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if app.opts.PollInterval != nil {
		cfg.Editor.PollInterval = config.Duration{Duration: *app.opts.PollInterval}
	}
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.config = cfg

	if cfg.Log.File != "" {
		logger, closer, err := OpenLogFile(cfg.Log.File, ParseLogLevel(cfg.Log.Level))
		if err != nil {
			return &InitError{Component: "log", Err: err}
		}
		app.logger = logger.WithField("session", app.session)
		app.logCloser = closer
	}

	app.Logger().Debug("configuration: poll_interval=%s level=%s", cfg.Editor.PollInterval, cfg.Log.Level)
	return nil
}

// SetBackend sets the terminal backend and creates the renderer for it.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	app.renderer = nil
	if b != nil {
		app.renderer = renderer.New(b, renderer.DefaultOptions())
	}
	return nil
}

// Run initializes the terminal and runs the editor loop until the user
// quits, the context is cancelled or the terminal fails. The terminal is
// restored before Run returns. A normal quit returns ErrQuit.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)
	defer app.Shutdown()

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}

	w, h := app.backend.Size()
	log := app.Logger().WithComponent("app")
	log.Info("editor started: %dx%d", w, h)

	err := app.eventLoop(ctx)
	switch {
	case IsQuit(err):
		log.Info("quit requested")
	case err != nil:
		log.Error("editor loop stopped: %v", err)
	}
	return err
}

// Shutdown restores the terminal, logs a metrics summary and closes the log
// file. It is safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		if app.backend != nil {
			app.backend.Shutdown()
		}

		log := app.Logger().WithComponent("app")
		log.Info("shutdown: %s", app.metrics.Snapshot())

		if app.logCloser != nil {
			_ = app.logCloser.Close()
		}
	})
}

// IsRunning returns true while Run is executing.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the effective configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// State returns the editor state.
func (app *Application) State() *editor.State {
	return app.state
}

// SessionID identifies this run in log output.
func (app *Application) SessionID() string {
	return app.session
}
