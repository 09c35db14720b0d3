package branding

import "testing"

func TestEmbeddedIdentity(t *testing.T) {
	if got := CLIName(); got != "extgen" {
		t.Errorf("CLIName() = %q, want %q", got, "extgen")
	}
	if got := DisplayName(); got != "ExtensionGPT" {
		t.Errorf("DisplayName() = %q, want %q", got, "ExtensionGPT")
	}
	if got := HomeDir(); got != ".extgen" {
		t.Errorf("HomeDir() = %q, want %q", got, ".extgen")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("server_path"); got != "EXTGEN_SERVER_PATH" {
		t.Errorf("EnvVar() = %q, want %q", got, "EXTGEN_SERVER_PATH")
	}
}
