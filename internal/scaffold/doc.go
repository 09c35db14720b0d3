// Package scaffold writes materialized extension templates to disk. It powers
// both the interactive flow and the "extgen create" command: it creates the
// target file and its parent directories when missing, refuses to replace an
// existing extension unless told to, and truncates before writing.
package scaffold
