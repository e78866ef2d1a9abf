// Package config reads and writes the pomdot settings file.
//
// The file lives at ~/.config/pomdot/config.toml unless POMDOT_CONFIG or the
// --config flag points elsewhere. It is a flat TOML table; every key is
// optional and falls through to the command line or built-in defaults.
//
// # Keys
//
//   - time: [FOCUS, REST, REPEAT], strings or integers (default ["30", "5", "0"])
//   - compact: true or false (default false)
//   - no_bell: true or false (default false)
//   - bar_width: integer >= 10 (default 30)
//
// Unknown keys are rejected rather than ignored, so typos surface instead of
// silently falling back to defaults.
//
// # Writing
//
// WriteDefault writes the commented template with built-in defaults and
// refuses to overwrite an existing file unless forced. Save always
// overwrites, rendering the same template with the given values.
package config
