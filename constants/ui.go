package constants

// Glyphs
const (
	GlyphBackground = ' '
	GlyphChecker    = '░'
	GlyphSnake      = '█'
	GlyphPickup     = '▓'
	GlyphPadding    = '▒'
)

// Score overlay position in physical cells
const (
	ScoreTextX = 2
	ScoreTextY = 2
)
