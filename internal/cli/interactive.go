package cli

import (
	"fmt"

	"github.com/extgen-labs/extgen/internal/config"
	"github.com/extgen-labs/extgen/internal/devserver"
	"github.com/extgen-labs/extgen/internal/flow"
	"github.com/extgen-labs/extgen/internal/menu"
	"github.com/extgen-labs/extgen/internal/platform"
	"github.com/extgen-labs/extgen/internal/scaffold"
	"github.com/spf13/cobra"
)

// exitFunc handles the Exit menu option. Tests replace it.
var exitFunc func(code int)

func newPrompter(cmd *cobra.Command) *menu.Prompter {
	opts := []menu.Option{menu.WithLogger(logger)}
	if exitFunc != nil {
		opts = append(opts, menu.WithExit(exitFunc))
	}
	return menu.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), opts...)
}

func newLauncher(cmd *cobra.Command) *devserver.Launcher {
	return devserver.NewLauncher(&devserver.ExecRunner{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}, logger)
}

// runInteractive is the root command: setup on first run, then the menu
// session.
func runInteractive(cmd *cobra.Command, args []string) error {
	path := resolveConfigPath()
	prompter := newPrompter(cmd)

	if !config.Exists(path) {
		logger.Debug("no config found, running setup", "path", path)
		if err := runSetupWizard(cmd, prompter, path); err != nil {
			return fmt.Errorf("setup: %w", err)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	session := flow.New(flow.Deps{
		Prompter: prompter,
		Config:   cfg,
		Writer:   scaffold.New(nil),
		Launcher: newLauncher(cmd),
		Clear:    func() error { return platform.ClearScreen(out) },
		Err:      cmd.ErrOrStderr(),
		Logger:   logger,
	})
	return session.Run(cmd.Context())
}
