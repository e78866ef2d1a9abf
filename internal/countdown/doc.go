// Package countdown runs timer stages in the terminal.
//
// A Runner renders one live line per stage and redraws it in place once per
// second:
//
//	Stage: Focus 1/2 | Remaining: 00:24:59 [#############################-]
//
// Remaining time is recomputed from the stage start on every tick instead of
// decrementing a counter, so a late sleep or slow write never makes the
// display drift from the clock. The bar drains as time passes.
//
// Sleeping is the only blocking operation and it returns as soon as the
// context is cancelled.
package countdown
