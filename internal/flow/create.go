package flow

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/extgen-labs/extgen/internal/extension"
	"github.com/extgen-labs/extgen/internal/menu"
	"github.com/extgen-labs/extgen/internal/screen"
)

const (
	namePrompt       = "Enter the name of the extension you want to create:"
	idPrompt         = "Enter the extension id (it is highly recommended to be '[your username in lowercase][name of extension in lowercase]'):"
	pathFormatPrompt = "The extension format is like a secret code with four placeholders: [server_path], [username], [name_of_extension], and [extension_id]. Let me know how you're playing this extension game!"
	sandboxedMessage = "Do you want the extension to be sandboxed?"
	launchMessage    = "Do you want to launch the TurboWarp development server now?"
)

var yesNo = []string{"Yes", "No"}

// createExtension walks the user through creating one extension file.
func (f *Flow) createExtension(ctx context.Context) error {
	f.state.Transition(screen.MainMenu, screen.CreateExtension)
	defer f.state.Transition(screen.CreateExtension, screen.MainMenu)

	name, err := f.prompter.ReadLine(namePrompt)
	if err != nil {
		return err
	}
	if name == "" {
		return errors.New("extension name cannot be empty")
	}
	if err := extension.ValidateName(name); err != nil {
		return err
	}

	id, err := f.prompter.ReadLine(idPrompt)
	if err != nil {
		return err
	}
	if id == "" {
		id = SuggestID(f.cfg.Username, name)
		fmt.Fprintf(f.out, "Using extension id '%s'\n", id)
	}
	// The class name is derived from the id; reject unusable ids before any
	// file is created.
	if _, err := extension.CamelCase(id); err != nil {
		return err
	}

	if err := f.clear(); err != nil {
		f.logger.Debug("clearing screen failed", "error", err)
	}

	path, err := f.resolvePath(name, id)
	if err != nil {
		return err
	}

	exists, err := f.writer.Exists(path)
	if err != nil {
		return err
	}
	if exists {
		keep := false
		err := f.ask(menu.Menu{
			Message: fmt.Sprintf("'%s' already exists. Do you want to overwrite it?", path),
			Options: yesNo,
			Screen:  screen.CreateExtension,
		}, menu.ActionMap{
			1: func() error { return nil },
			2: func() error { keep = true; return nil },
		})
		if err != nil {
			return err
		}
		if keep {
			fmt.Fprintf(f.out, "Keeping the existing file at '%s'\n", path)
			return nil
		}
	}

	if _, err := f.writer.EnsureFile(path); err != nil {
		return err
	}
	fmt.Fprintf(f.out, "Extension '%s.js' created at '%s'\n", name, path)

	err = f.ask(menu.Menu{
		Message: sandboxedMessage,
		Options: yesNo,
		Screen:  screen.CreateExtension,
	}, menu.ActionMap{
		1: func() error { return f.writeExtension(path, name, id, extension.FlavorSandboxed) },
		2: func() error { return f.writeExtension(path, name, id, extension.FlavorUnsandboxed) },
	})
	if err != nil {
		return err
	}

	if !f.cfg.IsTurboWarp {
		return nil
	}
	return f.ask(menu.Menu{
		Message: launchMessage,
		Options: yesNo,
		Screen:  screen.CreateExtension,
	}, menu.ActionMap{
		1: func() error { return f.launchServer(ctx) },
		2: func() error { return nil },
	})
}

// resolvePath picks the path format for the configured server and fills in
// its placeholders. TurboWarp's extensions server has a fixed layout; any
// other server gets a format typed by the user.
func (f *Flow) resolvePath(name, id string) (string, error) {
	format := filepath.FromSlash(extension.TurboWarpPathFormat)
	if !f.cfg.IsTurboWarp {
		var err error
		format, err = f.prompter.ReadLine(pathFormatPrompt)
		if err != nil {
			return "", err
		}
		if format == "" {
			return "", errors.New("extension path format cannot be empty")
		}
	}

	path := extension.ResolvePath(format, extension.PathValues{
		ServerPath: f.cfg.ServerPath,
		Username:   f.cfg.Username,
		Name:       name,
		ID:         id,
	})
	f.logger.Debug("resolved extension path", "format", format, "path", path)
	return path, nil
}

func (f *Flow) writeExtension(path, name, id string, flavor extension.Flavor) error {
	tmpl, err := extension.ForFlavor(flavor)
	if err != nil {
		return err
	}
	content, err := extension.Materialize(tmpl, name, id)
	if err != nil {
		return fmt.Errorf("materializing %s template: %w", flavor, err)
	}
	if err := f.writer.WriteExtension(path, content); err != nil {
		return err
	}
	fmt.Fprintf(f.out, "Wrote %s extension to '%s'\n", flavor, path)
	return nil
}

// SuggestID builds the recommended extension id: the lowercase username
// followed by the lowercase extension name with everything but letters and
// digits removed.
func SuggestID(username, name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(username + name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
