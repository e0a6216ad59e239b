// Package snake implements the segmented actor: movement, growth and collision queries.
package snake

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/termsnake/constants"
	"github.com/lixenwraith/termsnake/core"
)

// ErrEmptyBody is returned when a snake without segments is asked to move
var ErrEmptyBody = errors.New("snake has no segments")

// minCapacity is the initial ring size, must be a power of two
const minCapacity = 16

// Snake holds an ordered body (head first) in a ring buffer
// Push-front/pop-back are O(1); the ring doubles when full
type Snake struct {
	ring []core.Point
	head int // ring index of segment 0
	n    int

	dir    core.Direction
	growth bool
}

// New creates a snake from a head-first body; the slice is copied
func New(body []core.Point, dir core.Direction) *Snake {
	capacity := minCapacity
	for capacity < len(body) {
		capacity <<= 1
	}
	s := &Snake{
		ring: make([]core.Point, capacity),
		dir:  dir,
	}
	copy(s.ring, body)
	s.n = len(body)
	return s
}

// NewDefault creates the starting snake of a round
func NewDefault() *Snake {
	return New(constants.InitialBody, constants.InitialDirection)
}

func (s *Snake) mask() int {
	return len(s.ring) - 1
}

// at returns segment i, 0 is the head
func (s *Snake) at(i int) core.Point {
	return s.ring[(s.head+i)&s.mask()]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return s.n
}

// Direction returns the current heading
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// GrowthPending reports whether the next Advance keeps the tail
func (s *Snake) GrowthPending() bool {
	return s.growth
}

// Head returns the head segment, false on an empty body
func (s *Snake) Head() (core.Point, bool) {
	if s.n == 0 {
		return core.Point{}, false
	}
	return s.at(0), true
}

// Segments returns a head-first copy of the body
func (s *Snake) Segments() []core.Point {
	out := make([]core.Point, s.n)
	for i := range out {
		out[i] = s.at(i)
	}
	return out
}

// Each visits segments head first without allocating
func (s *Snake) Each(fn func(p core.Point)) {
	for i := 0; i < s.n; i++ {
		fn(s.at(i))
	}
}

// Turn changes heading; reversing onto the body is ignored
func (s *Snake) Turn(d core.Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.dir = d
}

// MarkGrowth makes the next Advance keep the tail
func (s *Snake) MarkGrowth() {
	s.growth = true
}

// Advance moves the head one cell along the current heading
func (s *Snake) Advance() error {
	if s.n == 0 {
		return errors.Wrap(ErrEmptyBody, "[Advance]")
	}

	dx, dy := s.dir.Offset()
	next := s.at(0).Add(dx, dy)
	s.pushFront(next)

	if s.growth {
		s.growth = false
		return nil
	}
	s.n-- // pop back
	return nil
}

func (s *Snake) pushFront(p core.Point) {
	if s.n == len(s.ring) {
		s.grow()
	}
	s.head = (s.head - 1) & s.mask()
	s.ring[s.head] = p
	s.n++
}

// grow doubles the ring and re-linearizes it with the head at index 0
func (s *Snake) grow() {
	next := make([]core.Point, len(s.ring)*2)
	for i := 0; i < s.n; i++ {
		next[i] = s.at(i)
	}
	s.ring = next
	s.head = 0
}

// IsOutOfBounds reports whether the head left the square grid
func (s *Snake) IsOutOfBounds(gridSize int) bool {
	head, ok := s.Head()
	if !ok {
		return false
	}
	return !head.In(gridSize)
}

// CollidesWithSelf reports whether the head overlaps any other segment
func (s *Snake) CollidesWithSelf() bool {
	if s.n < 2 {
		return false
	}
	head := s.at(0)
	for i := 1; i < s.n; i++ {
		if s.at(i) == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment is on (x, y)
func (s *Snake) Occupies(x, y int) bool {
	p := core.Point{X: x, Y: y}
	for i := 0; i < s.n; i++ {
		if s.at(i) == p {
			return true
		}
	}
	return false
}
