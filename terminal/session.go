package terminal

import (
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin is not attached to a TTY
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Session owns the tcell screen: raw mode and alternate screen for its lifetime
type Session struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// Open checks for a TTY, then enters raw mode on a new tcell screen
func Open() (*Session, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.Wrap(ErrNotTerminal, "[Open]")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[Open] failed to create screen")
	}
	return OpenScreen(screen)
}

// OpenScreen initializes an existing screen; used with simulation screens in tests
func OpenScreen(screen tcell.Screen) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[OpenScreen] failed to init screen")
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	return &Session{screen: screen, initialized: true}, nil
}

// Screen returns the underlying screen
func (s *Session) Screen() tcell.Screen {
	return s.screen
}

// Close restores the terminal. Safe to call multiple times
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	s.finalized = true
	s.screen.Fini()
}

// Closed reports whether Close has run
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finalized
}
