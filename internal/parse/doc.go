// Package parse validates and converts raw timer values.
//
// The same functions are used for values typed on the command line and for
// scalars read from the config file. Config integers are formatted as
// decimal strings first, so both sources share one code path.
//
// # Accepted Formats
//
//   - Duration: N (minutes), Nm (minutes), Ns (seconds); N must be > 0
//   - Repeat: non-negative integer, no suffix
//   - Bar width: integer >= MinBarWidth
//
// Input is whitespace-trimmed. Duration units are case-insensitive.
package parse
