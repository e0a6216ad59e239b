package terminal

import (
	"io"
	"os"
)

var (
	csiSGR0            = []byte("\x1b[0m")
	csiCursorShow      = []byte("\x1b[?25h")
	csiAltScreenExit   = []byte("\x1b[?1049l")
	csiAutoWrapOn      = []byte("\x1b[?7h")
	csiMouseOff        = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
	csiBracketPasteOff = []byte("\x1b[?2004l")
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Session.Close cannot run normally
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiBracketPasteOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
