package extension

import (
	_ "embed"
	"fmt"
)

//go:embed templates/sandboxed.js
var sandboxedTemplate string

//go:embed templates/unsandboxed.js
var unsandboxedTemplate string

// Placeholders recognised in the extension skeletons.
const (
	PlaceholderClassName = "[extension id in camelCase]"
	PlaceholderID        = "[extension id]"
	PlaceholderName      = "[extension name]"
)

// Sandboxed returns the skeleton for an extension that runs in the sandboxed
// worker: a bare class registered with Scratch.extensions.register.
func Sandboxed() string { return sandboxedTemplate }

// Unsandboxed returns the skeleton wrapped in the (function(Scratch) { ... })
// module wrapper with 'use strict'.
func Unsandboxed() string { return unsandboxedTemplate }

// ForFlavor returns the built-in skeleton for f.
func ForFlavor(f Flavor) (string, error) {
	switch f {
	case FlavorSandboxed:
		return sandboxedTemplate, nil
	case FlavorUnsandboxed:
		return unsandboxedTemplate, nil
	default:
		return "", fmt.Errorf("no built-in template for flavor %q", f)
	}
}
