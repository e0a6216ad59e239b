// Package spawn places pickups on free grid cells.
package spawn

import (
	"time"

	"github.com/lixenwraith/termsnake/core"
	"github.com/lixenwraith/termsnake/vmath"
)

// IntnSource yields uniform integers in [0, n)
type IntnSource interface {
	Intn(n int) int
}

// Occupier answers cell occupancy; *snake.Snake satisfies it
type Occupier interface {
	Occupies(x, y int) bool
}

// Walker visits every occupied cell once; *snake.Snake satisfies it
// Occupiers that also walk are marked in one pass instead of a per-cell query
type Walker interface {
	Each(fn func(p core.Point))
}

// Spawner chooses pickup cells uniformly among free cells
type Spawner struct {
	rng IntnSource

	// Scratch, reused across calls
	free  []core.Point
	taken []bool
}

// New creates a spawner drawing from rng
func New(rng IntnSource) *Spawner {
	return &Spawner{rng: rng}
}

// NewRandom creates a spawner seeded from the wall clock
func NewRandom() *Spawner {
	return New(vmath.NewFastRand(uint64(time.Now().UnixNano())))
}

// Spawn returns a random free cell, false when the grid is full
// Cells are enumerated column-major (x outer, y inner)
func (s *Spawner) Spawn(occ Occupier, gridSize int) (core.Point, bool) {
	s.free = s.free[:0]

	if w, ok := occ.(Walker); ok {
		s.markTaken(w, gridSize)
		for x := 0; x < gridSize; x++ {
			for y := 0; y < gridSize; y++ {
				if !s.taken[y*gridSize+x] {
					s.free = append(s.free, core.Point{X: x, Y: y})
				}
			}
		}
	} else {
		for x := 0; x < gridSize; x++ {
			for y := 0; y < gridSize; y++ {
				if !occ.Occupies(x, y) {
					s.free = append(s.free, core.Point{X: x, Y: y})
				}
			}
		}
	}

	if len(s.free) == 0 {
		return core.Point{}, false
	}
	return s.free[s.rng.Intn(len(s.free))], true
}

// markTaken resets the occupancy scratch and marks every in-grid cell w visits
func (s *Spawner) markTaken(w Walker, gridSize int) {
	cells := gridSize * gridSize
	if cap(s.taken) < cells {
		s.taken = make([]bool, cells)
	} else {
		s.taken = s.taken[:cells]
		clear(s.taken)
	}
	w.Each(func(p core.Point) {
		if p.In(gridSize) {
			s.taken[p.Y*gridSize+p.X] = true
		}
	})
}
