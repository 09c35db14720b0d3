package cli

import (
	"io"
	"log/slog"

	"github.com/extgen-labs/extgen/internal/branding"
	"github.com/extgen-labs/extgen/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	configPath string
	verbose    bool
	logger     = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` walks you through creating Scratch and TurboWarp extensions:
it asks for the extension's name and id, works out where the file belongs on
your extensions server, writes a sandboxed or unsandboxed skeleton, and can
start the development server for you.

Run without a subcommand for the interactive menu.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr(), verbose)
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/"+branding.HomeDir()+"/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// newLogger returns a text logger on w; debug output only with --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// resolveConfigPath returns --config when given, otherwise the default.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.FilePath()
}
