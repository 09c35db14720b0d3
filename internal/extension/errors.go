package extension

import "fmt"

// UnknownTemplateError is returned by Materialize when the template matches
// neither the sandboxed nor the unsandboxed skeleton.
type UnknownTemplateError struct {
	Flavor Flavor
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown extension template: detected flavor %q, want %q or %q",
		e.Flavor, FlavorSandboxed, FlavorUnsandboxed)
}

// EmptyIdentifierError is returned when an extension id has nothing left
// after splitting on '_' and '-'.
type EmptyIdentifierError struct {
	Input string
}

func (e *EmptyIdentifierError) Error() string {
	return fmt.Sprintf("extension id %q is empty after removing separators", e.Input)
}

// InvalidNameError is returned when an extension name cannot be used as a
// file name.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("extension name %q cannot contain path separators or be \".\" or \"..\"", e.Name)
}
