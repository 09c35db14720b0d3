package cli

import (
	"fmt"

	"github.com/extgen-labs/extgen/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Launch the extensions development server",
	Long: `Install the server's dependencies with "npm ci" and start it with
"npm run dev" in the configured server_path. Press Ctrl-C to stop it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(resolveConfigPath())
		if err != nil {
			return err
		}
		if !cfg.IsTurboWarp {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: the configured server is not TurboWarp's extensions server; trying npm anyway.")
		}
		return newLauncher(cmd).Launch(cmd.Context(), cfg.ServerPath)
	},
}
