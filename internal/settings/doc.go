// Package settings resolves effective timer settings.
//
// # Precedence (highest first)
//
//  1. Command-line flags
//  2. Config file
//  3. Built-in defaults
//
// Resolution is per field: --time may come from the command line while
// bar_width comes from the config file in the same run. Every resolved
// field records which source supplied it (see Field), which is what
// "pomdot --status" displays.
//
// --save-config resolves flags against built-in defaults only; the config
// file it is about to overwrite is never consulted.
//
// Resolved values are raw until Validate runs them through package parse.
package settings
