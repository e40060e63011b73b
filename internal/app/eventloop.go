package app

import (
	"context"

	"github.com/dshills/modal/internal/editor"
	"github.com/dshills/modal/internal/renderer/backend"
)

// eventLoop renders, waits up to the poll interval for one terminal event
// and applies it. Every iteration renders, so a timeout or an ignored event
// still refreshes the screen.
func (app *Application) eventLoop(ctx context.Context) error {
	poll := app.config.Editor.PollInterval.Duration

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		app.render()

		ev, err := app.backend.PollEvent(poll)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return &TerminalError{Op: "poll", Err: err}
		}

		if err := app.handleBackendEvent(ev); err != nil {
			return err
		}
	}
}

func (app *Application) render() {
	timer := StartTimer()
	app.renderer.Render(app.state)
	app.metrics.RecordFrame(timer.Elapsed())
}

// handleBackendEvent routes a backend event. Returns ErrQuit if the
// editor should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventNone:
		app.metrics.RecordPollTimeout()
	case backend.EventResize:
		app.Logger().Debug("resize %dx%d", ev.Width, ev.Height)
		app.metrics.RecordOtherEvent()
	default:
		app.metrics.RecordOtherEvent()
	}
	return nil
}

func (app *Application) handleKeyEvent(ev backend.Event) error {
	before := app.state.Mode()
	action := editor.Decode(before, ev.Key)
	app.metrics.RecordInput(action.Kind != editor.KindNone)
	if action.Kind == editor.KindNone {
		return nil
	}

	log := app.Logger().WithComponent("editor")
	result := app.state.Dispatch(action)
	log.Debug("%s: %s in %s", ev.Key, action, before)

	if after := app.state.Mode(); after != before {
		log.Debug("mode %s -> %s", before, after)
	}

	if result == editor.Terminate {
		return ErrQuit
	}
	return nil
}
