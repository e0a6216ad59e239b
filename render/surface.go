package render

// Surface is the capability set the simulation loop draws through
// GridRenderer backs it with a terminal; tests substitute in-memory fakes
type Surface interface {
	// Clear resets the frame to the background
	Clear()

	// PutChar fills logical cell (x, y) with glyph r; off-grid cells are ignored
	PutChar(x, y int, r rune)

	// DrawText writes a horizontal run at physical (x, y), clipped to the frame
	DrawText(text string, x, y int)

	// Present flushes the frame to the output device
	Present()

	// Width and Height return the physical frame extent
	Width() int
	Height() int
}
