//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, holds .extgen/
	ConfigPath string // EXTGEN_CONFIG
	ServerDir  string // Extensions server checkout
}

// setupTestEnv creates isolated temp directories and points HOME and
// EXTGEN_CONFIG at them so no test touches the real config. The env vars are
// restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:   t.TempDir(),
		ServerDir: t.TempDir(),
	}
	env.ConfigPath = filepath.Join(env.HomeDir, ".extgen", "config.yaml")

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("EXTGEN_CONFIG", env.ConfigPath)
	t.Setenv("EXTGEN_TOKEN", "")
	t.Setenv("HFTOKEN", "")

	return env
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
