package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/extgen-labs/extgen/internal/config"
	"github.com/extgen-labs/extgen/internal/menu"
	"github.com/extgen-labs/extgen/internal/scaffold"
	"github.com/extgen-labs/extgen/internal/screen"
)

// InvalidOptionMessage is shown after a choice that matches no option.
const InvalidOptionMessage = "Invalid option. Please try again."

// Main menu.
const (
	mainMessage       = "What do you want to do?"
	optionCreate      = "Create a new extension"
	optionLaunchServe = "Launch the development server"
)

// errExit unwinds nested prompts when the user picks Exit and the exit
// handler returned instead of terminating the process.
var errExit = errors.New("exit requested")

// ServerLauncher starts the development server in serverPath.
type ServerLauncher interface {
	Launch(ctx context.Context, serverPath string) error
}

// Deps are the collaborators of a Flow.
type Deps struct {
	Prompter *menu.Prompter
	Config   *config.Config
	Writer   *scaffold.Writer
	Launcher ServerLauncher
	// Clear clears the terminal between steps. Optional.
	Clear func() error
	// Err receives error reports; the prompter's writer is used when nil.
	Err    io.Writer
	Logger *slog.Logger
}

// Flow is one interactive session.
type Flow struct {
	prompter *menu.Prompter
	cfg      *config.Config
	writer   *scaffold.Writer
	launcher ServerLauncher
	clear    func() error
	out      io.Writer
	errOut   io.Writer
	logger   *slog.Logger
	state    *screen.State
}

// New returns a Flow starting on the main menu.
func New(d Deps) *Flow {
	f := &Flow{
		prompter: d.Prompter,
		cfg:      d.Config,
		writer:   d.Writer,
		launcher: d.Launcher,
		clear:    d.Clear,
		out:      d.Prompter.Writer(),
		errOut:   d.Err,
		logger:   d.Logger,
		state:    screen.New(),
	}
	if f.cfg == nil {
		f.cfg = &config.Config{}
	}
	if f.writer == nil {
		f.writer = scaffold.New(nil)
	}
	if f.clear == nil {
		f.clear = func() error { return nil }
	}
	if f.errOut == nil {
		f.errOut = f.out
	}
	if f.logger == nil {
		f.logger = slog.New(slog.DiscardHandler)
	}
	return f
}

// State returns a copy of the current screen state.
func (f *Flow) State() screen.State {
	return *f.state
}

// Run shows the menu for the current screen until the user exits or input
// ends. Handler errors are reported and the session continues; a
// *menu.MissingActionError ends the session with that error.
func (f *Flow) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch f.state.Current {
		case screen.MainMenu:
			outcome, err := f.prompter.Dispatch(menu.Menu{
				Message: mainMessage,
				Options: []string{optionCreate, optionLaunchServe},
				Screen:  screen.MainMenu,
			}, menu.ActionMap{
				1: func() error { return f.createExtension(ctx) },
				2: func() error { return f.launchServer(ctx) },
			}, InvalidOptionMessage)

			if outcome == menu.OutcomeExit {
				return nil
			}
			if done, err := f.handle(err); done {
				return err
			}
		default:
			f.logger.Debug("returning to main menu", "from", f.state.Current)
			f.state.Transition(f.state.Current, screen.MainMenu)
		}
	}
}

// handle decides whether err ends the session.
func (f *Flow) handle(err error) (bool, error) {
	var missing *menu.MissingActionError
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, errExit), errors.Is(err, io.EOF):
		return true, nil
	case errors.As(err, &missing):
		return true, err
	default:
		f.logger.Debug("handler failed", "screen", f.state.Current, "error", err)
		fmt.Fprintf(f.errOut, "Error: %v\n", err)
		return false, nil
	}
}

// ask dispatches m until the user picks a real option or Exit.
func (f *Flow) ask(m menu.Menu, actions menu.ActionMap) error {
	for {
		outcome, err := f.prompter.Dispatch(m, actions, InvalidOptionMessage)
		switch {
		case err != nil:
			return err
		case outcome == menu.OutcomeExit:
			return errExit
		case outcome == menu.OutcomeInvoked:
			return nil
		}
	}
}

// launchServer runs the development server configured in server_path.
func (f *Flow) launchServer(ctx context.Context) error {
	if f.launcher == nil {
		return errors.New("no development server launcher configured")
	}
	if f.cfg.ServerPath == "" {
		return errors.New("server_path is not configured; run setup first")
	}
	fmt.Fprintf(f.out, "Starting the development server in %s (Ctrl-C to stop)...\n", f.cfg.ServerPath)
	return f.launcher.Launch(ctx, f.cfg.ServerPath)
}
