package constants

// UI Layout
const (
	// HUDHeight is the number of rows reserved under the arena
	HUDHeight = 2

	// BorderWidth is the frame drawn around the arena
	BorderWidth = 1

	// StatusMessageTicks is how many ticks an event message stays in the HUD
	StatusMessageTicks = 30
)

// Glyphs
const (
	GlyphHead        = '█'
	GlyphTrail       = '▓'
	GlyphBorderH     = '─'
	GlyphBorderV     = '│'
	GlyphCornerTL    = '┌'
	GlyphCornerTR    = '┐'
	GlyphCornerBL    = '└'
	GlyphCornerBR    = '┘'
	GlyphFuel        = 'F'
	GlyphShield      = 'S'
	GlyphHyperSpeed  = 'H'
	GlyphBomb        = 'B'
	GlyphArmedBomb   = '*'
	GlyphBlastMarker = '+'
)
