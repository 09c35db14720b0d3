package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "extension.js")
	if err := os.WriteFile(path, []byte("class A {}"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, FilePerm); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		assertPerm(t, path, FilePerm)
	}
}

func TestSecure(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")
	if err := os.WriteFile(path, []byte("token: secret\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Secure(path); err != nil {
		t.Fatalf("Secure failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		assertPerm(t, path, SecretFilePerm)
	}
}

func TestSecure_MissingFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Chmod is a no-op on Windows")
	}
	if err := Secure(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func assertPerm(t *testing.T, path string, want os.FileMode) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != want {
		t.Errorf("permissions = %o, want %o", perm, want)
	}
}
