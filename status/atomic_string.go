package status

import (
	"strconv"
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen caps stored values in bytes; a UUID round id fits
const MaxStringLen = 64

// AtomicString is a string metric safe for concurrent Store/Load
// The zero value loads as ""
type AtomicString struct {
	v atomic.Value
}

// Store replaces the value, cut to MaxStringLen on a rune boundary
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.v.Store(val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	val, _ := s.v.Load().(string)
	return val
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
