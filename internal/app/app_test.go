package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/dshills/modal/internal/config"
	"github.com/dshills/modal/internal/engine/cursor"
	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/mode"
	"github.com/dshills/modal/internal/renderer/backend"
)

func newTestApp(t *testing.T, opts Options) (*Application, *backend.NullBackend) {
	t.Helper()
	if opts.PollInterval == nil {
		opts.PollInterval = durationPtr(5 * time.Millisecond)
	}
	app, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	b := backend.NewNullBackend(20, 4)
	if err := app.SetBackend(b); err != nil {
		t.Fatalf("SetBackend() failed: %v", err)
	}
	return app, b
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}

func postKeys(b *backend.NullBackend, keys ...key.Event) {
	for _, k := range keys {
		b.PostEvent(backend.Event{Type: backend.EventKey, Key: k})
	}
}

func runeKeys(s string) []key.Event {
	var out []key.Event
	for _, r := range s {
		out = append(out, key.NewRuneEvent(r, key.ModNone))
	}
	return out
}

func special(k key.Key) key.Event {
	return key.NewSpecialEvent(k, key.ModNone)
}

func TestNewApplicationDefaults(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer app.Shutdown()

	if app.Config().Editor.PollInterval.Duration != 100*time.Millisecond {
		t.Errorf("poll interval = %s, want 100ms", app.Config().Editor.PollInterval)
	}
	if app.Logger() != NullLogger {
		t.Error("logging should be disabled without a log file")
	}
	if app.State().Mode() != mode.Navigation {
		t.Error("editor should start in Navigation mode")
	}
	if app.SessionID() == "" {
		t.Error("expected a session id")
	}
	if app.IsRunning() {
		t.Error("expected IsRunning() to be false before Run()")
	}
}

func TestRunWithoutBackend(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := app.Run(context.Background()); !errors.Is(err, ErrNoBackend) {
		t.Errorf("expected ErrNoBackend, got %v", err)
	}
}

func TestRunQuitsAfterEditing(t *testing.T) {
	app, b := newTestApp(t, Options{})

	postKeys(b, runeKeys("ihi")...)
	postKeys(b, special(key.KeyEnter))
	postKeys(b, runeKeys("x")...)
	postKeys(b, special(key.KeyEscape))
	postKeys(b, runeKeys("q")...)

	err := app.Run(context.Background())
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}

	if got, want := app.State().Lines(), []string{"hi", "x"}; !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
	if got := app.State().Cursor(); got != cursor.At(1, 1) {
		t.Errorf("cursor = %s, want (1,1)", got)
	}
	if !b.IsShutdown() {
		t.Error("backend should be shut down after quit")
	}
	if app.IsRunning() {
		t.Error("application should not be running after Run returns")
	}
}

func TestRunRendersState(t *testing.T) {
	app, b := newTestApp(t, Options{})

	postKeys(b, runeKeys("ia")...)
	postKeys(b, special(key.KeyEnter), special(key.KeyEscape))
	postKeys(b, runeKeys("q")...)

	if err := app.Run(context.Background()); !IsQuit(err) {
		t.Fatalf("expected quit, got %v", err)
	}

	want := []string{"a", "~", "~", "~"}
	if got := b.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
	if b.ShowCount() == 0 {
		t.Error("expected at least one flushed frame")
	}
}

func TestQKeyInsertsInInsertion(t *testing.T) {
	app, b := newTestApp(t, Options{})

	postKeys(b, runeKeys("iq")...)
	postKeys(b, special(key.KeyEscape))
	postKeys(b, runeKeys("q")...)

	if err := app.Run(context.Background()); !IsQuit(err) {
		t.Fatalf("expected quit, got %v", err)
	}
	if got := app.State().Text(); got != "q" {
		t.Errorf("text = %q, want q", got)
	}
}

func TestRunIgnoresResizeAndMouse(t *testing.T) {
	app, b := newTestApp(t, Options{})

	b.PostEvent(backend.Event{Type: backend.EventMouse, MouseX: 3, MouseY: 1})
	b.PostEvent(backend.Event{Type: backend.EventResize, Width: 30, Height: 5})
	postKeys(b, key.NewRuneEvent('x', key.ModNone))
	postKeys(b, runeKeys("q")...)

	if err := app.Run(context.Background()); !IsQuit(err) {
		t.Fatalf("expected quit, got %v", err)
	}

	if got := app.State().Text(); got != "" {
		t.Errorf("navigation keys should not edit, text = %q", got)
	}
	snap := app.Metrics().Snapshot()
	if snap.OtherEvents != 2 {
		t.Errorf("other events = %d, want 2", snap.OtherEvents)
	}
	if snap.IgnoredCount != 1 {
		t.Errorf("ignored keys = %d, want 1", snap.IgnoredCount)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	app, b := newTestApp(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if !b.IsShutdown() {
		t.Error("backend should be shut down after cancel")
	}
	if app.Metrics().Snapshot().PollTimeouts == 0 {
		t.Error("expected poll timeouts while idle")
	}
}

func TestRunTerminalFailure(t *testing.T) {
	app, b := newTestApp(t, Options{})
	b.Shutdown()

	err := app.Run(context.Background())
	var terr *TerminalError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TerminalError, got %T: %v", err, err)
	}
	if !errors.Is(err, backend.ErrClosed) {
		t.Error("TerminalError should wrap backend.ErrClosed")
	}
}

func TestSetBackendWhileRunning(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	app.running.Store(true)
	defer app.running.Store(false)

	if err := app.SetBackend(backend.NewNullBackend(1, 1)); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}
}

func TestShutdownIdempotent(t *testing.T) {
	app, b := newTestApp(t, Options{})

	app.Shutdown()
	app.Shutdown()

	if !b.IsShutdown() {
		t.Error("backend should be shut down")
	}
}

func TestLogFileReceivesSession(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "modal.log")
	app, b := newTestApp(t, Options{LogFile: logPath, LogLevel: "debug"})

	postKeys(b, runeKeys("i")...)
	postKeys(b, special(key.KeyEscape))
	postKeys(b, runeKeys("q")...)
	if err := app.Run(context.Background()); !IsQuit(err) {
		t.Fatalf("expected quit, got %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		"session=" + app.SessionID(),
		"editor started: 20x4",
		"mode navigation -> insertion",
		"mode insertion -> navigation",
		"quit requested",
		"shutdown: uptime=",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestConfigFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "modal.toml")
	content := "[editor]\npoll_interval = \"250ms\"\n\n[log]\nlevel = \"warn\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	app, err := New(Options{ConfigPath: cfgPath, LogLevel: "error"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer app.Shutdown()

	cfg := app.Config()
	if cfg.Editor.PollInterval.Duration != 250*time.Millisecond {
		t.Errorf("poll interval = %s, want 250ms from file", cfg.Editor.PollInterval)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("level = %q, want flag override error", cfg.Log.Level)
	}
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"missing file", Options{ConfigPath: filepath.Join(t.TempDir(), "missing.toml")}},
		{"bad level", Options{LogLevel: "loud"}},
		{"poll too long", Options{PollInterval: durationPtr(time.Hour)}},
		{"poll zero", Options{PollInterval: durationPtr(0)}},
		{"poll negative", Options{PollInterval: durationPtr(-5 * time.Millisecond)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			var ierr *InitError
			if !errors.As(err, &ierr) {
				t.Fatalf("expected *InitError, got %T: %v", err, err)
			}
			if ierr.Component != "config" {
				t.Errorf("component = %q, want config", ierr.Component)
			}
		})
	}

	_, err := New(Options{ConfigPath: filepath.Join(t.TempDir(), "missing.toml")})
	if !errors.Is(err, config.ErrFileNotFound) {
		t.Errorf("expected config.ErrFileNotFound in chain, got %v", err)
	}
}

func TestLogFileOpenFailure(t *testing.T) {
	_, err := New(Options{LogFile: filepath.Join(t.TempDir(), "no", "such", "dir", "modal.log")})
	var ierr *InitError
	if !errors.As(err, &ierr) || ierr.Component != "log" {
		t.Errorf("expected log InitError, got %v", err)
	}
}
