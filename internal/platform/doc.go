// Package platform hides the few operating-system differences the CLI cares
// about: Unix permission bits (a no-op on Windows) and clearing the terminal
// between prompts.
package platform
