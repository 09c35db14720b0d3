package devserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Minimum toolchain versions for the TurboWarp extensions server.
const (
	MinNodeVersion = "18.0.0"
	MinNpmVersion  = "8.0.0"
)

// ToolStatus is the result of checking one tool.
type ToolStatus struct {
	Name    string
	Version string // Empty when the tool is missing or unparsable.
	Minimum string
	OK      bool
	Err     error
}

// ParseVersion strips whitespace and a leading "v" (as printed by
// "node --version") and parses the rest as semver.
func ParseVersion(raw string) (*semver.Version, error) {
	version := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	return semver.NewVersion(version)
}

// MeetsMinimum reports whether version is at least minimum.
func MeetsMinimum(version, minimum string) (bool, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return false, fmt.Errorf("parsing minimum %q: %w", minimum, err)
	}
	return c.Check(v), nil
}

// CheckTool runs "name --version" and compares the result with minimum.
func CheckTool(ctx context.Context, r Runner, name, minimum string) ToolStatus {
	status := ToolStatus{Name: name, Minimum: minimum}

	out, err := r.Output(ctx, name, "--version")
	if err != nil {
		status.Err = err
		return status
	}

	ok, err := MeetsMinimum(out, minimum)
	if err != nil {
		status.Err = err
		return status
	}
	v, _ := ParseVersion(out)
	status.Version = v.String()
	status.OK = ok
	return status
}

// CheckTools checks node and npm.
func CheckTools(ctx context.Context, r Runner) []ToolStatus {
	return []ToolStatus{
		CheckTool(ctx, r, "node", MinNodeVersion),
		CheckTool(ctx, r, "npm", MinNpmVersion),
	}
}
