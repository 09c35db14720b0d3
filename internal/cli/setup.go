package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/extgen-labs/extgen/internal/branding"
	"github.com/extgen-labs/extgen/internal/config"
	"github.com/extgen-labs/extgen/internal/menu"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	setupHeadless      bool
	setupInstallConfig string
)

func init() {
	setupCmd.Flags().BoolVar(&setupHeadless, "headless", false, "Read answers from an install file instead of prompting")
	setupCmd.Flags().StringVar(&setupInstallConfig, "install-config", config.DefaultInstallFile, "Answers file used with --headless")
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure " + branding.DisplayName(),
	Long: `Ask for your HuggingFace token, the directory of your extensions server and,
for TurboWarp's extensions server, your username. The answers are saved to the
config file, which is readable only by you.

With --headless the answers come from an install file (installconf.yaml by
default) with the same keys as the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveConfigPath()
		if setupHeadless {
			return runHeadlessSetup(cmd.OutOrStdout(), setupInstallConfig, path)
		}
		return runSetupWizard(cmd, newPrompter(cmd), path)
	},
}

const setupBanner = `
 _______ _______ _______ _     _  _____
 |______ |______    |    |     | |_____]
 ______| |______    |    |_____| |
`

const (
	tokenPrompt = "Paste your HuggingFace API token (OpenAI keys will not work).\n" +
		"It is stored only in your local config file. Leave empty to set it later:"
	serverPathPrompt = "Where is your extensions server? Enter its directory:"
	turboWarpMessage = "Is it TurboWarp's extensions server?"
	usernamePrompt   = "Which username do you publish under on TurboWarp? Extensions go to [username]/[extension_name].js:"
)

// errSetupCancelled is returned when Exit is picked during setup and the exit
// handler returns.
var errSetupCancelled = errors.New("setup cancelled")

// runSetupWizard asks the setup questions on prompter and saves the answers
// to path.
func runSetupWizard(cmd *cobra.Command, prompter *menu.Prompter, path string) error {
	out := prompter.Writer()
	fmt.Fprint(out, setupBanner)
	fmt.Fprintf(out, "\nWelcome to the %s setup.\n", branding.DisplayName())
	fmt.Fprintln(out, strings.Repeat("=-", 20)+"=")

	token, err := readSecret(cmd.InOrStdin(), prompter, tokenPrompt)
	if err != nil {
		return err
	}

	cfg := &config.Config{Token: token}
	for cfg.ServerPath == "" {
		cfg.ServerPath, err = prompter.ReadLine(serverPathPrompt)
		if err != nil {
			return err
		}
	}

	cfg.IsTurboWarp, err = askYesNo(prompter, turboWarpMessage)
	if err != nil {
		return err
	}

	for cfg.IsTurboWarp && cfg.Username == "" {
		cfg.Username, err = prompter.ReadLine(usernamePrompt)
		if err != nil {
			return err
		}
	}

	if err := saveChecked(path, cfg); err != nil {
		return err
	}
	printSetupDone(out, path, cfg)
	return nil
}

// runHeadlessSetup saves the answers from installFile to path.
func runHeadlessSetup(out io.Writer, installFile, path string) error {
	cfg, err := config.LoadInstallFile(installFile)
	if err != nil {
		return err
	}
	logger.Debug("headless setup", "install_file", installFile, "config", path)

	if err := saveChecked(path, cfg); err != nil {
		return err
	}
	printSetupDone(out, path, cfg)
	return nil
}

// saveChecked validates cfg before writing it so a bad answer never leaves an
// unloadable config behind.
func saveChecked(path string, cfg *config.Config) error {
	result, err := config.Check(cfg)
	if err != nil {
		return err
	}
	if !result.Valid {
		return &config.InvalidConfigError{Path: path, Issues: result.Issues}
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	logger.Debug("config saved", "path", path)
	return nil
}

func printSetupDone(out io.Writer, path string, cfg *config.Config) {
	fmt.Fprintf(out, "\nSetup complete. Settings saved to %s\n", path)
	fmt.Fprintf(out, "Change them later with '%s config set <key> <value>' or by editing that file.\n", branding.CLIName())
	if cfg.Token == "" {
		fmt.Fprintf(out, "No token saved; export %s or HFTOKEN before using the model.\n",
			branding.EnvVar(config.KeyToken))
	}
}

// askYesNo dispatches a Yes/No menu until one of them is picked.
func askYesNo(prompter *menu.Prompter, message string) (bool, error) {
	var answer bool
	m := menu.Menu{Message: message, Options: []string{"Yes", "No"}}
	actions := menu.ActionMap{
		1: func() error { answer = true; return nil },
		2: func() error { answer = false; return nil },
	}
	for {
		outcome, err := prompter.Dispatch(m, actions, "Please answer 1 (Yes) or 2 (No).")
		if err != nil {
			return false, err
		}
		switch outcome {
		case menu.OutcomeInvoked:
			return answer, nil
		case menu.OutcomeExit:
			return false, errSetupCancelled
		}
	}
}

// readSecret reads a line without echo when in is a terminal. Otherwise it
// warns and reads a visible line through prompter.
func readSecret(in io.Reader, prompter *menu.Prompter, prompt string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		out := prompter.Writer()
		fmt.Fprintln(out, prompt)
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("reading token: %w", err)
		}
		return strings.TrimSpace(string(secret)), nil
	}

	fmt.Fprintln(prompter.Writer(), "Warning: input is not a terminal, the token will be visible.")
	return prompter.ReadLine(prompt)
}
