//go:build !linux

package terminal

// resetTerminalMode is a no-op off Linux; tcell's Fini restores termios on the normal path
func resetTerminalMode() {}
