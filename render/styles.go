package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termsnake/constants"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbChecker    = tcell.NewRGBColor(36, 40, 59)    // One step lighter
	RgbPadding    = tcell.NewRGBColor(65, 72, 104)   // Muted frame
	RgbSnake      = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbPickup     = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbText       = tcell.NewRGBColor(255, 255, 255) // White
)

// Styles holds per-role cell styling
type Styles struct {
	Field   tcell.Style
	Checker tcell.Style
	Padding tcell.Style
	Text    tcell.Style

	// Glyphs maps a drawn rune to its style, unknown runes use Field
	Glyphs map[rune]tcell.Style
}

// DefaultStyles returns the standard palette
func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(RgbBackground)
	return Styles{
		Field:   base.Foreground(RgbChecker),
		Checker: base.Foreground(RgbChecker),
		Padding: base.Foreground(RgbPadding),
		Text:    tcell.StyleDefault.Foreground(RgbText).Background(RgbPadding).Bold(true),
		Glyphs: map[rune]tcell.Style{
			constants.GlyphSnake:  base.Foreground(RgbSnake),
			constants.GlyphPickup: base.Foreground(RgbPickup),
		},
	}
}

func (s Styles) glyph(r rune) tcell.Style {
	if st, ok := s.Glyphs[r]; ok {
		return st
	}
	return s.Field
}
