package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the overworld palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Outside the map

	RgbHUDText    = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBar  = tcell.NewRGBColor(30, 30, 46)    // Dark slate
	RgbStatusText = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbPausedBg   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbPausedText = tcell.NewRGBColor(0, 0, 0)       // Dark text for paused marker
	RgbSpriteMiss = tcell.NewRGBColor(255, 0, 255)   // Magenta for sprites without a color
)

// mirrored maps glyphs to their horizontal mirror image
var mirrored = map[rune]rune{
	'>': '<', '<': '>',
	'}': '{', '{': '}',
	')': '(', '(': ')',
	']': '[', '[': ']',
	'/': '\\', '\\': '/',
	'd': 'b', 'b': 'd',
	'p': 'q', 'q': 'p',
}

// mirror reverses a glyph row and swaps directional glyphs
func mirror(glyphs []rune) []rune {
	out := make([]rune, len(glyphs))
	for i, g := range glyphs {
		if m, ok := mirrored[g]; ok {
			g = m
		}
		out[len(glyphs)-1-i] = g
	}
	return out
}
