package extension

import "strings"

// Flavor classifies an extension skeleton.
type Flavor string

const (
	FlavorSandboxed   Flavor = "sandboxed"
	FlavorUnsandboxed Flavor = "unsandboxed"
	FlavorUnknown     Flavor = "unknown"
)

// Markers used by DetectFlavor.
const (
	classMarker         = "class"
	registerMarker      = "Scratch.extensions.register(new"
	moduleWrapperMarker = "(function(Scratch) {"
)

// DetectFlavor classifies source by substring markers. It is a heuristic and
// accepts templates that are not complete programs.
//
// A source with the module wrapper but no register call is unknown even if
// it declares a class.
func DetectFlavor(source string) Flavor {
	hasClass := strings.Contains(source, classMarker)
	hasRegister := strings.Contains(source, registerMarker)
	hasWrapper := strings.Contains(source, moduleWrapperMarker)

	switch {
	case hasClass && hasRegister && !hasWrapper:
		return FlavorSandboxed
	case hasWrapper && hasRegister:
		return FlavorUnsandboxed
	default:
		return FlavorUnknown
	}
}

// Known reports whether f is one of the flavors Materialize accepts.
func (f Flavor) Known() bool {
	return f == FlavorSandboxed || f == FlavorUnsandboxed
}
