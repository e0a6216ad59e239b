package input

import "github.com/lixenwraith/termsnake/core"

// Intent is a player request decoded from a key event
type Intent uint8

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentQuit
)

// Direction returns the heading for a directional intent
func (i Intent) Direction() (core.Direction, bool) {
	switch i {
	case IntentUp:
		return core.DirUp, true
	case IntentDown:
		return core.DirDown, true
	case IntentLeft:
		return core.DirLeft, true
	case IntentRight:
		return core.DirRight, true
	}
	return 0, false
}

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentQuit:
		return "quit"
	}
	return "none"
}

// Source is a non-blocking intent poller
// ok is false until the first intent is observed; afterwards the latest intent is repeated
type Source interface {
	Poll() (intent Intent, ok bool)
}
