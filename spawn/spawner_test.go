package spawn

import (
	"testing"

	"github.com/lixenwraith/termsnake/core"
	"github.com/lixenwraith/termsnake/snake"
	"github.com/lixenwraith/termsnake/vmath"
)

// fixedSource always returns the same index, clamped to n
type fixedSource struct {
	idx   int
	calls []int
}

func (f *fixedSource) Intn(n int) int {
	f.calls = append(f.calls, n)
	if f.idx >= n {
		return n - 1
	}
	return f.idx
}

// cellSet is an Occupier backed by a set
type cellSet map[core.Point]bool

func (c cellSet) Occupies(x, y int) bool {
	return c[core.Point{X: x, Y: y}]
}

func TestSpawnFirstFreeCell(t *testing.T) {
	src := &fixedSource{idx: 0}
	sp := New(src)

	occ := cellSet{{X: 0, Y: 0}: true, {X: 0, Y: 1}: true}
	p, ok := sp.Spawn(occ, 4)
	if !ok {
		t.Fatal("Expected a pickup cell")
	}
	// Column-major enumeration: (0,2) is the first free cell
	if p != (core.Point{X: 0, Y: 2}) {
		t.Errorf("Expected (0, 2), got %v", p)
	}
	if len(src.calls) != 1 || src.calls[0] != 14 {
		t.Errorf("Expected one Intn(14) call, got %v", src.calls)
	}
}

func TestSpawnLastFreeCell(t *testing.T) {
	sp := New(&fixedSource{idx: 1 << 30})
	p, ok := sp.Spawn(cellSet{}, 3)
	if !ok {
		t.Fatal("Expected a pickup cell")
	}
	if p != (core.Point{X: 2, Y: 2}) {
		t.Errorf("Expected (2, 2), got %v", p)
	}
}

func TestSpawnNeverOnSnake(t *testing.T) {
	sp := New(vmath.NewFastRand(12345))
	s := snake.NewDefault()
	const gridSize = 6

	for i := 0; i < 500; i++ {
		p, ok := sp.Spawn(s, gridSize)
		if !ok {
			t.Fatal("Expected a free cell")
		}
		if s.Occupies(p.X, p.Y) {
			t.Fatalf("Pickup spawned on snake at %v", p)
		}
		if !p.In(gridSize) {
			t.Fatalf("Pickup spawned outside grid at %v", p)
		}
	}
}

func TestSpawnSingleFreeCell(t *testing.T) {
	occ := cellSet{}
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			occ[core.Point{X: x, Y: y}] = true
		}
	}
	delete(occ, core.Point{X: 1, Y: 2})

	sp := New(vmath.NewFastRand(99))
	for i := 0; i < 20; i++ {
		p, ok := sp.Spawn(occ, 3)
		if !ok || p != (core.Point{X: 1, Y: 2}) {
			t.Fatalf("Expected only free cell (1, 2), got %v ok=%v", p, ok)
		}
	}
}

func TestSpawnFullGrid(t *testing.T) {
	// Snake filling a 3x3 grid (length == gridSize^2)
	body := []core.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	}
	s := snake.New(body, core.DirLeft)
	src := &fixedSource{}

	if _, ok := New(src).Spawn(s, 3); ok {
		t.Error("Expected no pickup on a full grid")
	}
	if len(src.calls) != 0 {
		t.Errorf("Expected no random draw on a full grid, got %d", len(src.calls))
	}
	if s.Len() != 9 {
		t.Errorf("Expected spawner not to mutate snake, length %d", s.Len())
	}
}

func TestSpawnUniform(t *testing.T) {
	sp := New(vmath.NewFastRand(2024))
	occ := cellSet{{X: 0, Y: 0}: true}
	counts := make(map[core.Point]int)

	const draws = 8000
	for i := 0; i < draws; i++ {
		p, _ := sp.Spawn(occ, 3)
		counts[p]++
	}

	if len(counts) != 8 {
		t.Fatalf("Expected 8 distinct cells, got %d", len(counts))
	}
	for p, c := range counts {
		// Expected 1000 each, allow generous slack
		if c < 800 || c > 1200 {
			t.Errorf("Cell %v drawn %d times, expected about %d", p, c, draws/8)
		}
	}
}

// countingSnake wraps a snake and counts per-cell occupancy queries
type countingSnake struct {
	*snake.Snake
	queries int
}

func (c *countingSnake) Occupies(x, y int) bool {
	c.queries++
	return c.Snake.Occupies(x, y)
}

func TestSpawnWalkerSkipsPerCellQueries(t *testing.T) {
	occ := &countingSnake{Snake: snake.NewDefault()}
	sp := New(&fixedSource{idx: 0})

	if _, ok := sp.Spawn(occ, 256); !ok {
		t.Fatal("Expected a pickup cell")
	}
	if occ.queries != 0 {
		t.Errorf("Expected occupancy marked in one walk, got %d per-cell queries", occ.queries)
	}
}

func TestSpawnWalkerMatchesOccupier(t *testing.T) {
	body := []core.Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}}
	s := snake.New(body, core.DirUp)
	set := cellSet{}
	for _, p := range body {
		set[p] = true
	}

	free := 5*5 - len(body)
	for idx := 0; idx < free; idx++ {
		a, okA := New(&fixedSource{idx: idx}).Spawn(s, 5)
		b, okB := New(&fixedSource{idx: idx}).Spawn(set, 5)
		if !okA || !okB || a != b {
			t.Errorf("Index %d: walker gave %v %v, occupier gave %v %v", idx, a, okA, b, okB)
		}
	}
}

func TestSpawnScratchReuseAcrossGridSizes(t *testing.T) {
	sp := New(&fixedSource{idx: 0})
	s := snake.New([]core.Point{{X: 0, Y: 0}}, core.DirRight)

	for _, grid := range []int{8, 3, 12, 3} {
		p, ok := sp.Spawn(s, grid)
		if !ok {
			t.Fatalf("Grid %d: expected a pickup cell", grid)
		}
		// (0,0) is taken, so the first free cell is (0,1) at any size
		if p != (core.Point{X: 0, Y: 1}) {
			t.Errorf("Grid %d: expected (0, 1), got %v", grid, p)
		}
	}
}
