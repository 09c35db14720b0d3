// Package cli defines the Cobra command tree for the extgen CLI. Running the
// root command starts the interactive menu session (running setup first if
// needed); the subcommands expose setup, non-interactive creation, the
// development server, config access and diagnostics. Commands only handle
// flags, I/O and wiring; the work happens in the internal packages.
package cli
