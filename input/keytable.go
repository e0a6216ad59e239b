package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings, matched case-insensitively for letters
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     IntentUp,
			tcell.KeyDown:   IntentDown,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
		},

		Runes: map[rune]Intent{
			// wasd
			'w': IntentUp,
			'a': IntentLeft,
			's': IntentDown,
			'd': IntentRight,

			// vi
			'k': IntentUp,
			'h': IntentLeft,
			'j': IntentDown,
			'l': IntentRight,

			'q': IntentQuit,
		},
	}
}

// Lookup resolves a key event, IntentNone for unbound keys
func (t *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return t.Runes[r]
	}
	return t.SpecialKeys[ev.Key()]
}
