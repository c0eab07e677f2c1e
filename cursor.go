package folio

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/user-none/folio/style"
)

// Cursor draws the custom pointer: an accent dot that tracks the mouse
// tightly and a ring that trails behind it on a softer easing. The ring
// grows over interactive targets and contracts while a button is held.
type Cursor struct {
	x, y         float64 // dot position
	ringX, ringY float64 // ring position, eased slower than the dot
	ringRadius   float64
	seen         bool // first update snaps into place instead of easing in
}

// NewCursor creates the cursor tracker
func NewCursor() *Cursor {
	return &Cursor{ringRadius: style.CursorRingRadius}
}

// Update advances the easing toward the real mouse position.
// hovering grows the ring; pressed contracts it.
func (c *Cursor) Update(hovering, pressed bool) {
	mx, my := ebiten.CursorPosition()
	tx, ty := float64(mx), float64(my)

	if !c.seen {
		c.x, c.y = tx, ty
		c.ringX, c.ringY = tx, ty
		c.seen = true
	}

	c.x = ease(c.x, tx, style.CursorDotEase)
	c.y = ease(c.y, ty, style.CursorDotEase)
	c.ringX = ease(c.ringX, tx, style.CursorRingEase)
	c.ringY = ease(c.ringY, ty, style.CursorRingEase)

	target := style.CursorRingRadius
	if hovering {
		target = style.CursorRingHoverRadius
	}
	if pressed {
		target *= 0.6
	}
	c.ringRadius = ease(c.ringRadius, target, style.CursorRingEase)
}

// Draw renders the ring and dot on top of everything else
func (c *Cursor) Draw(screen *ebiten.Image) {
	if !c.seen {
		return
	}

	ringColor := style.Accent
	ringColor.A = 200
	strokeWidth := float32(2 * style.DPIScale())
	vector.StrokeCircle(screen, float32(c.ringX), float32(c.ringY), float32(c.ringRadius), strokeWidth, ringColor, true)

	vector.DrawFilledCircle(screen, float32(c.x), float32(c.y), float32(style.CursorDotRadius), style.Accent, true)
}
