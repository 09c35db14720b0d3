// Package devserver launches the local extensions development server (the
// TurboWarp extensions repository) and checks that the Node.js toolchain it
// needs is installed and recent enough.
package devserver
