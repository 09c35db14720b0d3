package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/extgen-labs/extgen/internal/branding"
	"github.com/extgen-labs/extgen/internal/config"
	"github.com/extgen-labs/extgen/internal/extension"
	"github.com/extgen-labs/extgen/internal/flow"
	"github.com/extgen-labs/extgen/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	createName        string
	createID          string
	createUnsandboxed bool
	createPathFormat  string
	createForce       bool
)

// createFs is the filesystem the create command writes to. Tests replace it.
var createFs afero.Fs = afero.NewOsFs()

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Extension name (required)")
	createCmd.Flags().StringVar(&createID, "id", "", "Extension id (default: username + name, lowercase)")
	createCmd.Flags().BoolVar(&createUnsandboxed, "unsandboxed", false, "Generate the unsandboxed template")
	createCmd.Flags().StringVar(&createPathFormat, "path-format", "", "Output path format (default: TurboWarp layout when configured)")
	createCmd.Flags().BoolVar(&createForce, "force", false, "Replace an existing extension file")
	_ = createCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an extension without the interactive menu",
	Long: `Create a Scratch extension skeleton from flags.

The output path comes from --path-format, where [server_path], [username],
[name_of_extension] and [extension_id] are replaced. When the config points at
TurboWarp's extensions server the default is
` + extension.TurboWarpPathFormat + `.

Examples:
  ` + branding.CLIName() + ` create --name "My Cool Thing"
  ` + branding.CLIName() + ` create --name Lights --id jdlights --unsandboxed --path-format "[server_path]/[extension_id].js"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(resolveConfigPath())
		if err != nil {
			return err
		}

		if err := extension.ValidateName(createName); err != nil {
			return err
		}

		format, err := createFormat(cfg, createPathFormat)
		if err != nil {
			return err
		}

		id := createID
		if id == "" {
			id = flow.SuggestID(cfg.Username, createName)
		}
		flavor := extension.FlavorSandboxed
		if createUnsandboxed {
			flavor = extension.FlavorUnsandboxed
		}

		path := extension.ResolvePath(format, extension.PathValues{
			ServerPath: cfg.ServerPath,
			Username:   cfg.Username,
			Name:       createName,
			ID:         id,
		})
		logger.Debug("creating extension", "name", createName, "id", id, "flavor", flavor, "path", path)

		result, err := scaffold.New(createFs).Generate(scaffold.Options{
			Name:      createName,
			ID:        id,
			Flavor:    flavor,
			Path:      path,
			Overwrite: createForce,
		})
		if err != nil {
			return err
		}

		verb := "Created"
		if result.Overwritten {
			verb = "Replaced"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s extension '%s' (id %s) at '%s'\n", verb, result.Flavor, createName, id, result.Path)
		return nil
	},
}

// createFormat returns the path format for the create command.
func createFormat(cfg *config.Config, flagValue string) (string, error) {
	if flagValue != "" {
		return filepath.FromSlash(flagValue), nil
	}
	if cfg.IsTurboWarp {
		return filepath.FromSlash(extension.TurboWarpPathFormat), nil
	}
	return "", errors.New("--path-format is required unless the config points at TurboWarp's extensions server")
}
