// Package extension turns the generic Scratch extension skeletons into
// concrete source files. It classifies a skeleton as sandboxed or
// unsandboxed, substitutes the id, class-name and display-name placeholders,
// and expands the placeholders of the output path format. Nothing in this
// package touches the filesystem or the terminal.
package extension
