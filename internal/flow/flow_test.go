package flow

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/extgen-labs/extgen/internal/config"
	"github.com/extgen-labs/extgen/internal/extension"
	"github.com/extgen-labs/extgen/internal/menu"
	"github.com/extgen-labs/extgen/internal/scaffold"
	"github.com/extgen-labs/extgen/internal/screen"
	"github.com/spf13/afero"
)

type fakeLauncher struct {
	paths []string
	err   error
}

func (l *fakeLauncher) Launch(_ context.Context, serverPath string) error {
	l.paths = append(l.paths, serverPath)
	return l.err
}

type harness struct {
	flow     *Flow
	fs       afero.Fs
	out      bytes.Buffer
	errOut   bytes.Buffer
	exits    int
	clears   int
	launcher *fakeLauncher
}

func newHarness(t *testing.T, cfg *config.Config, input string) *harness {
	t.Helper()
	h := &harness{fs: afero.NewMemMapFs(), launcher: &fakeLauncher{}}
	p := menu.NewPrompter(strings.NewReader(input), &h.out, menu.WithExit(func(int) { h.exits++ }))
	h.flow = New(Deps{
		Prompter: p,
		Config:   cfg,
		Writer:   scaffold.New(h.fs),
		Launcher: h.launcher,
		Clear:    func() error { h.clears++; return nil },
		Err:      &h.errOut,
	})
	return h
}

func (h *harness) run(t *testing.T) {
	t.Helper()
	if err := h.flow.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v\noutput:\n%s", err, h.out.String())
	}
}

func (h *harness) read(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(h.fs, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func turboWarpConfig() *config.Config {
	return &config.Config{ServerPath: "/srv", IsTurboWarp: true, Username: "jane"}
}

func TestRun_CreateSandboxedTurboWarp(t *testing.T) {
	h := newHarness(t, turboWarpConfig(), "1\nMy Cool Thing\njanedoeMyCoolThing\n1\n2\n")
	h.run(t)

	path := filepath.FromSlash("/srv/extensions/jane/My Cool Thing.js")
	content := h.read(t, path)
	for _, want := range []string{"class janedoeMyCoolThing {", "id: 'janedoeMyCoolThing'", "name: 'My Cool Thing'"} {
		if !strings.Contains(content, want) {
			t.Errorf("extension missing %q:\n%s", want, content)
		}
	}
	if extension.DetectFlavor(content) != extension.FlavorSandboxed {
		t.Errorf("flavor = %q, want sandboxed", extension.DetectFlavor(content))
	}

	out := h.out.String()
	if !strings.Contains(out, "Extension 'My Cool Thing.js' created at '"+path+"'") {
		t.Errorf("missing creation message in output:\n%s", out)
	}
	if !strings.Contains(out, launchMessage) {
		t.Error("TurboWarp users should be offered the dev server")
	}
	if len(h.launcher.paths) != 0 {
		t.Errorf("launcher called after answering No: %v", h.launcher.paths)
	}
	if h.clears != 1 {
		t.Errorf("clears = %d, want 1", h.clears)
	}

	state := h.flow.State()
	if state.Current != screen.MainMenu || state.Previous != screen.CreateExtension {
		t.Errorf("state = %+v, want back on main menu from create_extension", state)
	}
}

func TestRun_CreateUnsandboxedCustomPath(t *testing.T) {
	cfg := &config.Config{ServerPath: "/home/jane/server", IsTurboWarp: false}
	h := newHarness(t, cfg, "1\nThing\njane-thing\n[server_path]/ext/[extension_id].js\n2\n")
	h.run(t)

	content := h.read(t, "/home/jane/server/ext/jane-thing.js")
	if extension.DetectFlavor(content) != extension.FlavorUnsandboxed {
		t.Errorf("flavor = %q, want unsandboxed", extension.DetectFlavor(content))
	}
	if !strings.Contains(content, "class janeThing {") {
		t.Errorf("class name not camelCased:\n%s", content)
	}
	if strings.Contains(h.out.String(), launchMessage) {
		t.Error("non-TurboWarp users must not be offered the TurboWarp server")
	}
}

func TestRun_EmptyIDUsesSuggestion(t *testing.T) {
	h := newHarness(t, turboWarpConfig(), "1\nMy Cool Thing\n\n1\n2\n")
	h.run(t)

	content := h.read(t, filepath.FromSlash("/srv/extensions/jane/My Cool Thing.js"))
	if !strings.Contains(content, "id: 'janemycoolthing'") {
		t.Errorf("suggested id not used:\n%s", content)
	}
	if !strings.Contains(h.out.String(), "Using extension id 'janemycoolthing'") {
		t.Errorf("suggestion not announced:\n%s", h.out.String())
	}
}

func TestRun_InvalidChoiceReprompts(t *testing.T) {
	h := newHarness(t, turboWarpConfig(), "9\n1\nThing\nthing\nmaybe\n2\n2\n")
	h.run(t)

	if got := strings.Count(h.out.String(), InvalidOptionMessage); got != 2 {
		t.Errorf("invalid message shown %d times, want 2", got)
	}
	content := h.read(t, filepath.FromSlash("/srv/extensions/jane/Thing.js"))
	if extension.DetectFlavor(content) != extension.FlavorUnsandboxed {
		t.Errorf("flavor = %q, want unsandboxed", extension.DetectFlavor(content))
	}
}

func TestRun_ExistingFileKept(t *testing.T) {
	h := newHarness(t, turboWarpConfig(), "1\nThing\nthing\n2\n")
	path := filepath.FromSlash("/srv/extensions/jane/Thing.js")
	if err := afero.WriteFile(h.fs, path, []byte("// my work"), 0644); err != nil {
		t.Fatal(err)
	}

	h.run(t)

	if got := h.read(t, path); got != "// my work" {
		t.Errorf("existing file changed: %q", got)
	}
	if !strings.Contains(h.out.String(), "Keeping the existing file") {
		t.Errorf("missing keep message:\n%s", h.out.String())
	}
}

func TestRun_ExistingFileOverwritten(t *testing.T) {
	h := newHarness(t, turboWarpConfig(), "1\nThing\nthing\n1\n1\n2\n")
	path := filepath.FromSlash("/srv/extensions/jane/Thing.js")
	if err := afero.WriteFile(h.fs, path, []byte("// my work"), 0644); err != nil {
		t.Fatal(err)
	}

	h.run(t)

	content := h.read(t, path)
	if strings.Contains(content, "my work") || !strings.Contains(content, "class thing {") {
		t.Errorf("file not overwritten:\n%s", content)
	}
}

func TestRun_EmptyIdentifierReported(t *testing.T) {
	h := newHarness(t, turboWarpConfig(), "1\nThing\n--\n")
	h.run(t)

	if !strings.Contains(h.errOut.String(), "is empty after removing separators") {
		t.Fatalf("error not reported, stderr = %q", h.errOut.String())
	}
	if ok, _ := afero.Exists(h.fs, filepath.FromSlash("/srv/extensions/jane/Thing.js")); ok {
		t.Error("file created despite the unusable id")
	}
	if h.clears != 0 {
		t.Error("screen cleared before the id was validated")
	}
}

func TestRun_NameWithPathSeparatorRejected(t *testing.T) {
	h := newHarness(t, turboWarpConfig(), "1\n../../etc/evil\nevil\n")
	h.run(t)

	if !strings.Contains(h.errOut.String(), "cannot contain path separators") {
		t.Fatalf("error not reported, stderr = %q", h.errOut.String())
	}
	if ok, _ := afero.Exists(h.fs, filepath.FromSlash("/etc/evil.js")); ok {
		t.Error("file written outside the server path")
	}
	if h.clears != 0 {
		t.Error("screen cleared before the name was validated")
	}
}

func TestRun_ErrorThenContinue(t *testing.T) {
	h := newHarness(t, turboWarpConfig(), "1\n\n1\nThing\nthing\n1\n2\n")
	h.run(t)

	if !strings.Contains(h.errOut.String(), "extension name cannot be empty") {
		t.Errorf("stderr = %q", h.errOut.String())
	}
	if ok, _ := afero.Exists(h.fs, filepath.FromSlash("/srv/extensions/jane/Thing.js")); !ok {
		t.Error("second attempt did not create the extension")
	}
}

func TestRun_ExitFromMainMenu(t *testing.T) {
	h := newHarness(t, turboWarpConfig(), "3\n1\n")
	h.run(t)

	if h.exits != 1 {
		t.Errorf("exits = %d, want 1", h.exits)
	}
	if strings.Contains(h.out.String(), namePrompt) {
		t.Error("input after Exit must not be consumed")
	}
}

func TestRun_ExitFromNestedMenu(t *testing.T) {
	h := newHarness(t, turboWarpConfig(), "1\nThing\nthing\n3\n1\n")
	h.run(t)

	if h.exits != 1 {
		t.Errorf("exits = %d, want 1", h.exits)
	}
	path := filepath.FromSlash("/srv/extensions/jane/Thing.js")
	if got := h.read(t, path); got != "" {
		t.Errorf("template written after Exit: %q", got)
	}
}

func TestRun_LaunchServerFromMainMenu(t *testing.T) {
	h := newHarness(t, turboWarpConfig(), "2\n")
	h.run(t)

	if len(h.launcher.paths) != 1 || h.launcher.paths[0] != "/srv" {
		t.Errorf("launcher paths = %v, want [/srv]", h.launcher.paths)
	}
}

func TestRun_LaunchAfterCreate(t *testing.T) {
	h := newHarness(t, turboWarpConfig(), "1\nThing\nthing\n1\n1\n")
	h.run(t)

	if len(h.launcher.paths) != 1 {
		t.Errorf("launcher paths = %v, want one launch", h.launcher.paths)
	}
}

func TestRun_LauncherErrorReported(t *testing.T) {
	h := newHarness(t, turboWarpConfig(), "2\n")
	h.launcher.err = errors.New("npm exploded")
	h.run(t)

	if !strings.Contains(h.errOut.String(), "npm exploded") {
		t.Errorf("stderr = %q", h.errOut.String())
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	h := newHarness(t, turboWarpConfig(), "1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := h.flow.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRun_UnknownScreenReturnsToMain(t *testing.T) {
	h := newHarness(t, turboWarpConfig(), "")
	h.flow.state.Transition(screen.MainMenu, "settings")
	h.run(t)

	state := h.flow.State()
	if state.Current != screen.MainMenu || state.Previous != "settings" {
		t.Errorf("state = %+v", state)
	}
}

func TestSuggestID(t *testing.T) {
	tests := []struct {
		username, name, want string
	}{
		{"Jane", "My Cool Thing", "janemycoolthing"},
		{"", "Thing 2", "thing2"},
		{"jane_doe", "a-b", "janedoeab"},
		{"", "!!!", ""},
	}
	for _, tt := range tests {
		if got := SuggestID(tt.username, tt.name); got != tt.want {
			t.Errorf("SuggestID(%q, %q) = %q, want %q", tt.username, tt.name, got, tt.want)
		}
	}
}
