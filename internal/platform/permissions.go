package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Permission modes used for files the CLI writes.
const (
	DirPerm        os.FileMode = 0755
	FilePerm       os.FileMode = 0644
	SecretFilePerm os.FileMode = 0600
)

// Chmod sets file permissions. Windows has no Unix permission bits, so it is
// a no-op there.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// Secure restricts path to its owner. Used for files that hold tokens.
func Secure(path string) error {
	if err := Chmod(path, SecretFilePerm); err != nil {
		return fmt.Errorf("restricting permissions on %s: %w", path, err)
	}
	return nil
}
