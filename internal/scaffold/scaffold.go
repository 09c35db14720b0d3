package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/extgen-labs/extgen/internal/extension"
	"github.com/extgen-labs/extgen/internal/platform"
	"github.com/spf13/afero"
)

// ErrExists is returned by Generate when the target exists and Overwrite is
// not set.
var ErrExists = errors.New("extension file already exists")

// Writer creates extension files on a filesystem.
type Writer struct {
	fs afero.Fs
}

// New returns a Writer backed by fs. A nil fs means the OS filesystem.
func New(fs afero.Fs) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Writer{fs: fs}
}

// Options describes one extension to generate.
type Options struct {
	Name      string // Display name, e.g. "My Cool Thing"
	ID        string // Extension id, e.g. "janedoemycoolthing"
	Flavor    extension.Flavor
	Path      string // Resolved output path
	Overwrite bool
}

// Result holds the outcome of a generation.
type Result struct {
	Path        string
	Flavor      extension.Flavor
	Created     bool // The file did not exist before.
	Overwritten bool // An existing file was replaced.
}

// Exists reports whether path already exists.
func (w *Writer) Exists(path string) (bool, error) {
	ok, err := afero.Exists(w.fs, path)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	return ok, nil
}

// EnsureFile creates path as an empty file, along with its parent
// directories, if it does not exist yet. An existing file is left untouched.
// It reports whether the file was created.
func (w *Writer) EnsureFile(path string) (bool, error) {
	exists, err := w.Exists(path)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := w.fs.MkdirAll(dir, platform.DirPerm); err != nil {
			return false, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	f, err := w.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY, platform.FilePerm)
	if err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing %s: %w", path, err)
	}
	return true, nil
}

// WriteExtension replaces the whole content of path with content.
func (w *Writer) WriteExtension(path, content string) error {
	if err := afero.WriteFile(w.fs, path, []byte(content), platform.FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Generate materializes the built-in template for opts.Flavor and writes it to
// opts.Path. The template is materialized before anything touches the disk,
// so an invalid id never leaves a file behind.
func (w *Writer) Generate(opts Options) (*Result, error) {
	tmpl, err := extension.ForFlavor(opts.Flavor)
	if err != nil {
		return nil, err
	}
	content, err := extension.Materialize(tmpl, opts.Name, opts.ID)
	if err != nil {
		return nil, fmt.Errorf("materializing %s template: %w", opts.Flavor, err)
	}

	exists, err := w.Exists(opts.Path)
	if err != nil {
		return nil, err
	}
	if exists && !opts.Overwrite {
		return nil, fmt.Errorf("%w: %s (use --force to replace it)", ErrExists, opts.Path)
	}

	created, err := w.EnsureFile(opts.Path)
	if err != nil {
		return nil, err
	}
	if err := w.WriteExtension(opts.Path, content); err != nil {
		return nil, err
	}

	return &Result{
		Path:        opts.Path,
		Flavor:      opts.Flavor,
		Created:     created,
		Overwritten: exists,
	}, nil
}
