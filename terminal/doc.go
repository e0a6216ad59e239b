// Package terminal owns the terminal session for the game.
//
// Features:
//   - TTY detection before entering raw mode
//   - tcell screen lifetime (raw mode, alternate screen) with idempotent Close
//   - Emergency restoration from panic handlers when Close cannot run
package terminal
