package parameter

// Terminal Front End
const (
	// HUDRows is the number of terminal rows reserved below the arena
	HUDRows = 3

	// StarCount is the number of background stars
	StarCount = 480

	// StarfieldWidth and StarfieldHeight are the star placement extents before wrapping
	StarfieldWidth  = 2000.0
	StarfieldHeight = 1200.0

	// StarParallax is the offset gain from player displacement off arena center
	StarParallax = 0.02

	// StarTwinkleStep is the twinkle phase advance per frame
	StarTwinkleStep = 0.05

	// StarDimThreshold is the brightness below which a star is drawn dim
	StarDimThreshold = 0.6

	// EnergyBarWidth is the cell width of the HUD energy gauge
	EnergyBarWidth = 20
)

// Glyphs
const (
	GlyphPlayer        = '@'
	GlyphPlayerCloaked = '.'
	GlyphShield        = 'O'
	GlyphEnemy         = 'E'
	GlyphDecoy         = '*'
	GlyphGoal          = '◉'
	GlyphStation       = '⌂'
	GlyphStar          = '·'
	GlyphStarBright    = '+'
	GlyphViewRange     = '░'
	GlyphLife          = '♥'
	GlyphBarFull       = '█'
	GlyphBarEmpty      = '░'
)

// Status Colors (hex, consumed by the palette)
const (
	ColorDanger   = "#ff3030"
	ColorSuccess  = "#30ff60"
	ColorNeutral  = "#e0e0e0"
	ColorPatrol   = "#40a0ff"
	ColorAlerted  = "#ff2020"
	ColorCloak    = "#6060a0"
	ColorShield   = "#40e0ff"
	ColorDecoy    = "#ffd040"
	ColorGoal     = "#40ff80"
	ColorStation  = "#a0a0ff"
	ColorStar     = "#aae6ff"
	ColorViewEdge = "#303850"
)
