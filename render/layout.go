package render

// Layout maps logical grid cells onto physical terminal cells
type Layout struct {
	Width, Height int // physical extent
	GridSize      int

	ScaleX, ScaleY int

	PadLeft, PadRight int
	PadTop, PadBottom int
}

// ComputeLayout derives scale and centering padding for a square grid
//
// Uniform scale is min(termW, termH) / gridSize, clamped to 1. With aspect
// correction, cells are 2:1 (wide:tall) using the largest vertical scale that
// fits both axes; when even a 2x1 cell does not fit the uniform scale is kept.
func ComputeLayout(termW, termH, gridSize int, aspect bool) Layout {
	l := Layout{Width: termW, Height: termH, GridSize: gridSize}
	if gridSize <= 0 {
		return l
	}

	scale := min(termW, termH) / gridSize
	if scale < 1 {
		scale = 1
	}
	l.ScaleX, l.ScaleY = scale, scale

	if aspect {
		sy := min(termH/gridSize, termW/(2*gridSize))
		if sy >= 1 {
			l.ScaleX, l.ScaleY = 2*sy, sy
		}
	}

	gridW := gridSize * l.ScaleX
	gridH := gridSize * l.ScaleY

	l.PadLeft = max(0, (termW-gridW)/2)
	l.PadRight = max(0, termW-gridW-l.PadLeft)
	l.PadTop = max(0, (termH-gridH)/2)
	l.PadBottom = max(0, termH-gridH-l.PadTop)
	return l
}

// Origin returns the top-left physical cell of logical cell (x, y)
func (l Layout) Origin(x, y int) (px, py int) {
	return l.PadLeft + x*l.ScaleX, l.PadTop + y*l.ScaleY
}

// InField returns true if physical (px, py) lies inside the scaled grid
func (l Layout) InField(px, py int) bool {
	return px >= l.PadLeft && px < l.PadLeft+l.GridSize*l.ScaleX &&
		py >= l.PadTop && py < l.PadTop+l.GridSize*l.ScaleY
}

// Logical maps a physical cell inside the field back to its logical cell
func (l Layout) Logical(px, py int) (x, y int, ok bool) {
	if !l.InField(px, py) {
		return 0, 0, false
	}
	return (px - l.PadLeft) / l.ScaleX, (py - l.PadTop) / l.ScaleY, true
}
