package constants

import (
	"time"

	"github.com/lixenwraith/termsnake/core"
)

// Game Loop Timing
const (
	// FrameDuration is the fixed tick length; the loop sleeps to this boundary
	FrameDuration = 200 * time.Millisecond

	// MinFrameDuration and MaxFrameDuration bound the configurable tick
	MinFrameDuration = 10 * time.Millisecond
	MaxFrameDuration = 2 * time.Second
)

// Grid Defaults
const (
	// DefaultGridSize is the side of the square playing field in logical cells
	DefaultGridSize = 18

	MinGridSize = 4
	MaxGridSize = 256
)

// Initial snake, head first
var (
	InitialBody = []core.Point{
		{X: 5, Y: 1},
		{X: 4, Y: 1},
		{X: 3, Y: 1},
		{X: 2, Y: 1},
		{X: 1, Y: 1},
	}
	InitialDirection = core.DirRight
)
