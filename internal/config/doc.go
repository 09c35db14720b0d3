// Package config manages the user settings stored at ~/.extgen/config.yaml:
// the extensions server path, whether that server is TurboWarp's, the
// TurboWarp username, and the API token collected during setup. Values can be
// overridden with EXTGEN_* environment variables, and the file is validated
// against an embedded JSON schema before it is used.
package config
