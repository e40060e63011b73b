package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the user asked to leave the editor.
	ErrQuit = errors.New("quit requested")

	// ErrNoBackend indicates Run was called before a terminal backend was set.
	ErrNoBackend = errors.New("no terminal backend")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")
)

// InitError represents a failure to start one component.
type InitError struct {
	Component string // e.g. "config", "log", "terminal"
	Err       error
}

func (e *InitError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("failed to initialize %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TerminalError wraps a failure reported by the terminal backend while the
// editor is running.
type TerminalError struct {
	Op  string // e.g. "poll"
	Err error
}

func (e *TerminalError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
	}
	return "terminal " + e.Op
}

func (e *TerminalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements errors.Is for TerminalError.
// Matches both the wrapper itself and the wrapped error.
func (e *TerminalError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*TerminalError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}

// IsQuit reports whether err ends the editor normally.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}

// WrapError wraps an error with additional context if it's not nil.
// The format string uses fmt.Sprintf verbs; wrapping is handled internally.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}
