package snake

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/lixenwraith/termsnake/core"
)

func body(pts ...[2]int) []core.Point {
	out := make([]core.Point, len(pts))
	for i, p := range pts {
		out[i] = core.Point{X: p[0], Y: p[1]}
	}
	return out
}

func TestNewDefault(t *testing.T) {
	s := NewDefault()
	want := body([2]int{5, 1}, [2]int{4, 1}, [2]int{3, 1}, [2]int{2, 1}, [2]int{1, 1})
	if got := s.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected initial body %v, got %v", want, got)
	}
	if s.Direction() != core.DirRight {
		t.Errorf("Expected initial direction right, got %s", s.Direction())
	}
	if s.GrowthPending() {
		t.Error("Expected no pending growth on a new snake")
	}
}

func TestNewCopiesBody(t *testing.T) {
	b := body([2]int{2, 2}, [2]int{1, 2})
	s := New(b, core.DirRight)
	b[0] = core.Point{X: 9, Y: 9}

	head, _ := s.Head()
	if head != (core.Point{X: 2, Y: 2}) {
		t.Errorf("Expected snake to own a copy of the body, head changed to %v", head)
	}
}

func TestAdvanceShiftsBody(t *testing.T) {
	s := NewDefault()
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	want := body([2]int{6, 1}, [2]int{5, 1}, [2]int{4, 1}, [2]int{3, 1}, [2]int{2, 1})
	if got := s.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected body %v, got %v", want, got)
	}
	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}
}

func TestAdvanceWithGrowth(t *testing.T) {
	s := NewDefault()
	s.MarkGrowth()
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	want := body([2]int{6, 1}, [2]int{5, 1}, [2]int{4, 1}, [2]int{3, 1}, [2]int{2, 1}, [2]int{1, 1})
	if got := s.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected body %v, got %v", want, got)
	}
	if s.GrowthPending() {
		t.Error("Expected growth flag to be cleared after Advance")
	}

	// Next advance without growth keeps length
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if s.Len() != 6 {
		t.Errorf("Expected length to stay 6, got %d", s.Len())
	}
}

func TestAdvanceLengthProperty(t *testing.T) {
	s := NewDefault()
	dirs := []core.Direction{core.DirDown, core.DirRight, core.DirDown, core.DirLeft, core.DirDown}

	for i := 0; i < 200; i++ {
		s.Turn(dirs[i%len(dirs)])
		grow := i%3 == 0
		if grow {
			s.MarkGrowth()
		}
		before := s.Len()
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance failed at step %d: %v", i, err)
		}

		want := before
		if grow {
			want++
		}
		if s.Len() != want {
			t.Fatalf("Step %d: expected length %d, got %d", i, want, s.Len())
		}
		if s.GrowthPending() {
			t.Fatalf("Step %d: expected growth flag cleared", i)
		}
	}
}

func TestRingGrowthPreservesOrder(t *testing.T) {
	s := New(body([2]int{0, 0}), core.DirRight)
	for i := 1; i <= 40; i++ {
		s.MarkGrowth()
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
	}

	segs := s.Segments()
	if len(segs) != 41 {
		t.Fatalf("Expected 41 segments, got %d", len(segs))
	}
	for i, p := range segs {
		if p.X != 40-i || p.Y != 0 {
			t.Fatalf("Segment %d: expected (%d, 0), got %v", i, 40-i, p)
		}
	}
}

func TestTurnOppositeIgnored(t *testing.T) {
	tests := []struct {
		current, opposite core.Direction
	}{
		{core.DirUp, core.DirDown},
		{core.DirDown, core.DirUp},
		{core.DirLeft, core.DirRight},
		{core.DirRight, core.DirLeft},
	}

	for _, tt := range tests {
		t.Run(tt.current.String(), func(t *testing.T) {
			s := New(body([2]int{5, 5}, [2]int{4, 5}), tt.current)
			s.Turn(tt.opposite)
			if s.Direction() != tt.current {
				t.Errorf("Expected direction to stay %s, got %s", tt.current, s.Direction())
			}
		})
	}
}

func TestTurnLeftWhileRightKeepsMovingRight(t *testing.T) {
	s := NewDefault()
	s.Turn(core.DirLeft)
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	head, _ := s.Head()
	if head != (core.Point{X: 6, Y: 1}) {
		t.Errorf("Expected head (6, 1), got %v", head)
	}
}

func TestTurnPerpendicular(t *testing.T) {
	s := NewDefault()
	s.Turn(core.DirDown)
	if s.Direction() != core.DirDown {
		t.Fatalf("Expected direction down, got %s", s.Direction())
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	head, _ := s.Head()
	if head != (core.Point{X: 5, Y: 2}) {
		t.Errorf("Expected head (5, 2), got %v", head)
	}
}

func TestIsOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		head core.Point
		want bool
	}{
		{"Inside", core.Point{X: 3, Y: 3}, false},
		{"Origin", core.Point{X: 0, Y: 0}, false},
		{"Last cell", core.Point{X: 17, Y: 17}, false},
		{"Past right", core.Point{X: 18, Y: 1}, true},
		{"Past bottom", core.Point{X: 1, Y: 18}, true},
		{"Past left", core.Point{X: -1, Y: 1}, true},
		{"Past top", core.Point{X: 1, Y: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New([]core.Point{tt.head}, core.DirRight)
			if got := s.IsOutOfBounds(18); got != tt.want {
				t.Errorf("Expected IsOutOfBounds(18) = %v for head %v, got %v", tt.want, tt.head, got)
			}
		})
	}
}

func TestAdvanceOffRightEdge(t *testing.T) {
	s := New(body([2]int{17, 1}, [2]int{16, 1}, [2]int{15, 1}), core.DirRight)
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	head, _ := s.Head()
	if head != (core.Point{X: 18, Y: 1}) {
		t.Errorf("Expected head (18, 1), got %v", head)
	}
	if !s.IsOutOfBounds(18) {
		t.Error("Expected snake to be out of bounds")
	}
}

func TestCollidesWithSelf(t *testing.T) {
	tests := []struct {
		name string
		body []core.Point
		want bool
	}{
		{"Single segment", body([2]int{1, 1}), false},
		{"Straight line", body([2]int{5, 1}, [2]int{4, 1}, [2]int{3, 1}), false},
		{"Head on body", body([2]int{2, 2}, [2]int{3, 2}, [2]int{3, 3}, [2]int{2, 3}, [2]int{2, 2}), true},
		{"Head on neck", body([2]int{4, 1}, [2]int{4, 1}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.body, core.DirRight)
			if got := s.CollidesWithSelf(); got != tt.want {
				t.Errorf("Expected CollidesWithSelf() = %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCollidesAfterLoop(t *testing.T) {
	// Length 5 turning in a tight square bites its own body
	s := NewDefault()
	for _, d := range []core.Direction{core.DirDown, core.DirLeft, core.DirUp} {
		s.Turn(d)
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
	}
	if !s.CollidesWithSelf() {
		t.Errorf("Expected self collision, body %v", s.Segments())
	}
}

func TestOccupies(t *testing.T) {
	s := NewDefault()
	for x := 1; x <= 5; x++ {
		if !s.Occupies(x, 1) {
			t.Errorf("Expected (%d, 1) to be occupied", x)
		}
	}
	if s.Occupies(6, 1) {
		t.Error("Expected (6, 1) to be free")
	}
	if s.Occupies(1, 2) {
		t.Error("Expected (1, 2) to be free")
	}
}

func TestAdvanceEmptyBody(t *testing.T) {
	s := New(nil, core.DirRight)
	err := s.Advance()
	if err == nil {
		t.Fatal("Expected error advancing an empty snake")
	}
	if !errors.Is(err, ErrEmptyBody) {
		t.Errorf("Expected ErrEmptyBody, got %v", err)
	}
	if s.IsOutOfBounds(18) || s.CollidesWithSelf() {
		t.Error("Expected empty snake to report no collisions")
	}
	if _, ok := s.Head(); ok {
		t.Error("Expected no head on an empty snake")
	}
}
