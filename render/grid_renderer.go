package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termsnake/constants"
)

// RendererOption configures a GridRenderer
type RendererOption func(*GridRenderer)

// WithAspectCorrection draws logical cells twice as wide as tall
func WithAspectCorrection(on bool) RendererOption {
	return func(r *GridRenderer) { r.aspect = on }
}

// WithCheckerboard alternates the field background per logical cell
func WithCheckerboard(on bool) RendererOption {
	return func(r *GridRenderer) { r.checker = on }
}

// WithStyles replaces the default palette
func WithStyles(s Styles) RendererOption {
	return func(r *GridRenderer) { r.styles = s }
}

// GridRenderer rasterizes a logical grid onto a tcell screen
// Construction hides the cursor; Close restores it
type GridRenderer struct {
	screen   tcell.Screen
	gridSize int
	aspect   bool
	checker  bool
	styles   Styles

	layout Layout
	buf    *FrameBuffer
	closed bool
}

var _ Surface = (*GridRenderer)(nil)

// NewGridRenderer sizes the frame to the screen and hides the cursor
func NewGridRenderer(screen tcell.Screen, gridSize int, opts ...RendererOption) *GridRenderer {
	r := &GridRenderer{
		screen:   screen,
		gridSize: gridSize,
		aspect:   true,
		styles:   DefaultStyles(),
	}
	for _, opt := range opts {
		opt(r)
	}

	w, h := screen.Size()
	r.layout = ComputeLayout(w, h, gridSize, r.aspect)
	r.buf = NewFrameBuffer(w, h)

	screen.HideCursor()
	return r
}

// Layout returns the current scaling and padding
func (r *GridRenderer) Layout() Layout {
	return r.layout
}

// Buffer exposes the frame buffer for inspection
func (r *GridRenderer) Buffer() *FrameBuffer {
	return r.buf
}

func (r *GridRenderer) Width() int  { return r.buf.Width() }
func (r *GridRenderer) Height() int { return r.buf.Height() }

// Clear picks up terminal resizes, then paints padding and field background
func (r *GridRenderer) Clear() {
	if w, h := r.screen.Size(); w != r.layout.Width || h != r.layout.Height {
		r.layout = ComputeLayout(w, h, r.gridSize, r.aspect)
		r.buf.Resize(w, h)
		// Physical terminal no longer matches the front buffer after resize
		r.screen.Sync()
	}

	r.buf.Clear(constants.GlyphPadding, r.styles.Padding)

	l := r.layout
	for y := 0; y < r.gridSize; y++ {
		for x := 0; x < r.gridSize; x++ {
			glyph, style := rune(constants.GlyphBackground), r.styles.Field
			if r.checker && (x+y)%2 == 1 {
				glyph, style = constants.GlyphChecker, r.styles.Checker
			}
			r.fill(l, x, y, glyph, style)
		}
	}
}

// PutChar fills the scaled block of logical cell (x, y)
func (r *GridRenderer) PutChar(x, y int, ch rune) {
	if x < 0 || x >= r.gridSize || y < 0 || y >= r.gridSize {
		return
	}
	r.fill(r.layout, x, y, ch, r.styles.glyph(ch))
}

func (r *GridRenderer) fill(l Layout, x, y int, ch rune, style tcell.Style) {
	px, py := l.Origin(x, y)
	for dy := 0; dy < l.ScaleY; dy++ {
		for dx := 0; dx < l.ScaleX; dx++ {
			r.buf.Set(px+dx, py+dy, ch, style)
		}
	}
}

// DrawText writes text at physical (x, y), truncated at the right edge
func (r *GridRenderer) DrawText(text string, x, y int) {
	if y < 0 || y >= r.buf.Height() {
		return
	}
	col := x
	for _, ch := range text {
		if col >= r.buf.Width() {
			break
		}
		r.buf.Set(col, y, ch, r.styles.Text)
		col++
	}
}

// Present writes every buffer cell by explicit position, then shows the frame once
func (r *GridRenderer) Present() {
	if r.closed {
		return
	}
	for y := 0; y < r.buf.Height(); y++ {
		for x := 0; x < r.buf.Width(); x++ {
			c, _ := r.buf.Get(x, y)
			r.screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	r.screen.Show()
}

// Close restores the cursor; safe to call multiple times
func (r *GridRenderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.screen.ShowCursor(0, max(0, r.buf.Height()-1))
	r.screen.Show()
}
