package devserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
)

// Launcher starts the extensions development server.
type Launcher struct {
	runner Runner
	logger *slog.Logger
}

// NewLauncher returns a Launcher that runs commands through r.
func NewLauncher(r Runner, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Launcher{runner: r, logger: logger}
}

// Launch installs the server's locked dependencies with "npm ci" and then
// runs "npm run dev" in serverPath. It blocks until the server exits.
// Cancelling ctx, or an interrupt while the server runs, stops the server
// and is not reported as an error.
func (l *Launcher) Launch(ctx context.Context, serverPath string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	info, err := os.Stat(serverPath)
	if err != nil {
		return fmt.Errorf("server path %s: %w", serverPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("server path %s is not a directory", serverPath)
	}

	l.logger.Info("installing server dependencies", "dir", serverPath)
	if err := l.runner.Run(ctx, serverPath, "npm", "ci"); err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil
		}
		return fmt.Errorf("installing server dependencies: %w", err)
	}

	l.logger.Info("starting development server", "dir", serverPath)
	if err := l.runner.Run(ctx, serverPath, "npm", "run", "dev"); err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			l.logger.Info("development server stopped")
			return nil
		}
		return fmt.Errorf("running development server: %w", err)
	}
	return nil
}
