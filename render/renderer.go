package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-courier/parameter"
	"github.com/lixenwraith/space-courier/session"
	"github.com/lixenwraith/space-courier/status"
	"github.com/lixenwraith/space-courier/vmath"
)

// Renderer draws session views onto a tcell screen
// The arena is scaled to fill every row above the HUD
type Renderer struct {
	screen   tcell.Screen
	palette  *Palette
	stars    *Starfield
	registry *status.Registry
	debug    bool
}

// Option configures a Renderer
type Option func(*Renderer)

// WithDebug shows metrics from reg in the HUD
func WithDebug(reg *status.Registry) Option {
	return func(r *Renderer) {
		r.debug = true
		r.registry = reg
	}
}

// NewRenderer creates a renderer with a starfield seeded from seed
func NewRenderer(screen tcell.Screen, seed uint64, opts ...Option) *Renderer {
	r := &Renderer{
		screen:  screen,
		palette: NewPalette(),
		stars:   NewStarfield(seed),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reseed replaces the starfield, used on session restart
func (r *Renderer) Reseed(seed uint64) {
	r.stars = NewStarfield(seed)
}

// viewport maps arena coordinates to terminal cells
type viewport struct {
	cols, rows int
	w, h       float64
	sx, sy     float64 // Cells per arena unit
}

func newViewport(cols, rows int, arenaW, arenaH float64) viewport {
	return viewport{
		cols: cols, rows: rows,
		w: arenaW, h: arenaH,
		sx: float64(cols) / arenaW, sy: float64(rows) / arenaH,
	}
}

// cell returns the cell for p, false when p lies outside the arena
// Points on the far edge map to the last row or column
func (vp viewport) cell(p vmath.Vector2) (int, int, bool) {
	if p.X < 0 || p.Y < 0 || p.X > vp.w || p.Y > vp.h {
		return 0, 0, false
	}
	x, y := vp.clampedCell(p)
	return x, y, true
}

// center returns the arena point at the middle of cell (x, y)
func (vp viewport) center(x, y int) vmath.Vector2 {
	return vmath.Vec((float64(x)+0.5)/vp.sx, (float64(y)+0.5)/vp.sy)
}

// Draw renders one frame; advance steps the starfield animation
func (r *Renderer) Draw(v session.View, paused, advance bool) {
	width, height := r.screen.Size()
	r.screen.Clear()

	arenaRows := height - parameter.HUDRows
	if width <= 0 || arenaRows <= 0 {
		r.screen.Show()
		return
	}
	vp := newViewport(width, arenaRows, v.Width, v.Height)

	if advance {
		r.stars.Advance(v.Player.Position)
	}
	r.drawStars(vp)
	for _, e := range v.Enemies {
		r.drawViewRange(vp, e)
	}
	r.drawMarker(vp, v.Station, parameter.GlyphStation, r.palette.Station)
	r.drawMarker(vp, v.Goal, parameter.GlyphGoal, r.palette.Goal)
	for _, d := range v.Decoys {
		r.drawMarker(vp, d.Position, parameter.GlyphDecoy, r.palette.Decoy(d.Alpha))
	}
	for _, e := range v.Enemies {
		style := tcell.StyleDefault.Foreground(r.palette.Suspicion(e.Suspicion))
		if e.Alerted {
			style = style.Bold(true)
		}
		r.setCell(vp, e.Position, parameter.GlyphEnemy, style)
	}
	r.drawPlayer(vp, v)

	r.drawHUD(v, arenaRows, width, paused)
	r.screen.Show()
}

func (r *Renderer) setCell(vp viewport, p vmath.Vector2, glyph rune, style tcell.Style) {
	if x, y, ok := vp.cell(p); ok {
		r.screen.SetContent(x, y, glyph, nil, style)
	}
}

func (r *Renderer) drawMarker(vp viewport, p vmath.Vector2, glyph rune, fg tcell.Color) {
	r.setCell(vp, p, glyph, tcell.StyleDefault.Foreground(fg))
}

func (r *Renderer) drawStars(vp viewport) {
	for i := 0; i < r.stars.Len(); i++ {
		pos, brightness, size := r.stars.Project(i)
		glyph := parameter.GlyphStar
		if size > 2 && brightness >= parameter.StarDimThreshold {
			glyph = parameter.GlyphStarBright
		}
		r.setCell(vp, pos, glyph, tcell.StyleDefault.Foreground(r.palette.Star(brightness)))
	}
}

// drawViewRange outlines the perception circle as the cells whose centers sit inside
// the view distance but outside one cell-width less
func (r *Renderer) drawViewRange(vp viewport, e session.EnemyView) {
	outer := e.ViewDistance
	edge := math.Max(1/vp.sx, 1/vp.sy)
	inner := outer - edge
	style := tcell.StyleDefault.Foreground(r.palette.ViewEdge)
	if e.Chasing {
		style = tcell.StyleDefault.Foreground(r.palette.Suspicion(e.Suspicion)).Dim(true)
	}

	minX, minY := vp.clampedCell(e.Position.Sub(vmath.Vec(outer, outer)))
	maxX, maxY := vp.clampedCell(e.Position.Add(vmath.Vec(outer, outer)))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c := vp.center(x, y)
			if vmath.EllipseContains(e.Position, outer, outer, c) && !vmath.EllipseContains(e.Position, inner, inner, c) {
				r.screen.SetContent(x, y, parameter.GlyphViewRange, nil, style)
			}
		}
	}
}

// clampedCell maps p to the nearest cell inside the viewport
func (vp viewport) clampedCell(p vmath.Vector2) (int, int) {
	x := int(math.Floor(p.X * vp.sx))
	y := int(math.Floor(p.Y * vp.sy))
	x = max(0, min(x, vp.cols-1))
	y = max(0, min(y, vp.rows-1))
	return x, y
}

func (r *Renderer) drawPlayer(vp viewport, v session.View) {
	p := v.Player
	glyph := parameter.GlyphPlayer
	fg := r.palette.Neutral
	if p.Cloaked {
		glyph = parameter.GlyphPlayerCloaked
		fg = r.palette.Cloak
	}
	style := tcell.StyleDefault.Foreground(fg).Bold(true)
	if v.Invincible {
		style = style.Blink(true)
	}

	if p.Shielded {
		// Shield ring on the cells around the ship
		x, y, ok := vp.cell(p.Position)
		if ok {
			shield := tcell.StyleDefault.Foreground(r.palette.Shield)
			for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				cx, cy := x+d[0], y+d[1]
				if cx >= 0 && cy >= 0 && cx < vp.cols && cy < vp.rows {
					r.screen.SetContent(cx, cy, parameter.GlyphShield, nil, shield)
				}
			}
		}
	}
	r.setCell(vp, p.Position, glyph, style)
}
