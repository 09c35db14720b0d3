// Package flow drives the interactive session: it holds the current screen,
// shows the menu for it, and runs the handler bound to the user's choice. The
// create-extension handler asks for the extension's name and id, resolves
// the output path from the configuration, and writes the chosen template.
package flow
