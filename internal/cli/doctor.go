package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/extgen-labs/extgen/internal/branding"
	"github.com/extgen-labs/extgen/internal/config"
	"github.com/extgen-labs/extgen/internal/devserver"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// doctorRunner runs node and npm for the tool checks. Tests replace it.
var doctorRunner devserver.Runner = &devserver.ExecRunner{}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for " + branding.DisplayName(),
	Long: `Check that the config file exists and is valid, that the extensions server
directory exists, and that node and npm meet the server's minimum versions.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		report := &doctorReport{out: cmd.OutOrStdout()}
		runDoctor(cmd.Context(), report, resolveConfigPath(), doctorRunner)
		report.summary()
		if report.failed > 0 {
			return errors.New("doctor found problems")
		}
		return nil
	},
}

// doctorReport prints check lines and counts the results.
type doctorReport struct {
	out    io.Writer
	passed int
	failed int
}

func (r *doctorReport) ok(format string, a ...any) {
	r.passed++
	fmt.Fprintf(r.out, "  [ OK ] "+format+"\n", a...)
}

func (r *doctorReport) fail(format string, a ...any) {
	r.failed++
	fmt.Fprintf(r.out, "  [FAIL] "+format+"\n", a...)
}

func (r *doctorReport) miss(format string, a ...any) {
	r.failed++
	fmt.Fprintf(r.out, "  [MISS] "+format+"\n", a...)
}

func (r *doctorReport) summary() {
	p := message.NewPrinter(language.English)
	fmt.Fprintln(r.out, p.Sprintf("\n%d checks passed, %d failed", r.passed, r.failed))
}

func runDoctor(ctx context.Context, r *doctorReport, path string, runner devserver.Runner) {
	fmt.Fprintln(r.out, "Config check:")
	cfg := checkConfig(r, path)

	if cfg != nil {
		fmt.Fprintln(r.out, "Server check:")
		checkServerPath(r, cfg.ServerPath)
	}

	fmt.Fprintln(r.out, "Runtime check:")
	for _, status := range devserver.CheckTools(ctx, runner) {
		switch {
		case status.Err != nil:
			r.miss("%s: %v", status.Name, status.Err)
		case !status.OK:
			r.fail("%s %s is older than %s", status.Name, status.Version, status.Minimum)
		default:
			r.ok("%s %s (>= %s)", status.Name, status.Version, status.Minimum)
		}
	}
}

func checkConfig(r *doctorReport, path string) *config.Config {
	cfg, err := config.Load(path)
	var invalid *config.InvalidConfigError
	switch {
	case errors.Is(err, config.ErrNotSetUp):
		r.miss("no config at %s; run '%s setup'", path, branding.CLIName())
		return nil
	case errors.As(err, &invalid):
		r.fail("%s breaks the config schema:", path)
		for _, issue := range invalid.Issues {
			fmt.Fprintf(r.out, "         %s\n", issue)
		}
		return nil
	case err != nil:
		r.fail("%v", err)
		return nil
	}
	r.ok("%s is valid", path)
	return cfg
}

func checkServerPath(r *doctorReport, serverPath string) {
	info, err := os.Stat(serverPath)
	switch {
	case err != nil:
		r.miss("server_path %s: %v", serverPath, err)
	case !info.IsDir():
		r.fail("server_path %s is not a directory", serverPath)
	default:
		r.ok("server_path %s exists", serverPath)
	}
}
