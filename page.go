package folio

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/user-none/folio/achievements"
	"github.com/user-none/folio/backdrop"
	"github.com/user-none/folio/sections"
	"github.com/user-none/folio/style"
)

// Page renders the portfolio as a vertical strip of full-viewport
// bands, one per section, behind a themed shader backdrop. It owns the
// scroll position and feeds section visibility into the achievement
// manager; it reads no input itself, the app layer translates keys and
// wheel movement into the Scroll methods.
type Page struct {
	sections []sections.Section
	manager  *achievements.Manager
	vault    *VaultView
	effects  *backdrop.Manager

	viewportW int
	viewportH int

	scroll       float64 // eased pixel offset into the strip
	scrollTarget float64

	// wasAbove latches whether each section met the visibility
	// threshold last frame, so a visit fires only on the transition.
	// A reset never touches this, which keeps sections already on
	// screen from instantly re-recording themselves.
	wasAbove     []bool
	revealFrames []int

	base *ebiten.Image // theme-color source layer for the backdrop chain
}

// NewPage creates the page over its content, unlock engine, vault
// display, and backdrop chain. effects may be nil for a flat fill.
func NewPage(list []sections.Section, manager *achievements.Manager, vault *VaultView, effects *backdrop.Manager) *Page {
	return &Page{
		sections:     list,
		manager:      manager,
		vault:        vault,
		effects:      effects,
		wasAbove:     make([]bool, len(list)),
		revealFrames: make([]int, len(list)),
	}
}

// ease moves current a fraction of the way toward target. Shared by
// the page scroll and the cursor trails.
func ease(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// visibleRatio returns the fraction of a band of height bandH whose top
// sits at top (screen coordinates) that falls inside a viewport of
// height viewH.
func visibleRatio(top, bandH, viewH float64) float64 {
	if bandH <= 0 || viewH <= 0 {
		return 0
	}
	upper := math.Max(top, 0)
	lower := math.Min(top+bandH, viewH)
	if lower <= upper {
		return 0
	}
	return (lower - upper) / bandH
}

// Update advances scrolling and the per-section animations, and records
// section visits on the frame their visibility crosses the threshold.
func (p *Page) Update(viewportW, viewportH int) {
	if viewportH <= 0 || len(p.sections) == 0 {
		return
	}

	// Keep the same place in the strip across a resize.
	if p.viewportH > 0 && viewportH != p.viewportH {
		factor := float64(viewportH) / float64(p.viewportH)
		p.scroll *= factor
		p.scrollTarget *= factor
	}
	p.viewportW = viewportW
	p.viewportH = viewportH

	p.clampTarget()
	p.scroll = ease(p.scroll, p.scrollTarget, style.PageScrollEase)
	if math.Abs(p.scrollTarget-p.scroll) < 0.5 {
		p.scroll = p.scrollTarget
	}

	for i := range p.sections {
		ratio := p.sectionRatio(i)

		above := ratio >= achievements.DefaultVisibleRatio
		if above && !p.wasAbove[i] {
			p.manager.Visit(p.sections[i].ID)
		}
		p.wasAbove[i] = above

		if ratio > 0 && p.revealFrames[i] < style.SectionRevealFrames {
			p.revealFrames[i]++
		}
	}
}

// sectionRatio reports how much of section i is currently on screen.
func (p *Page) sectionRatio(i int) float64 {
	h := float64(p.viewportH)
	return visibleRatio(float64(i)*h-p.scroll, h, h)
}

func (p *Page) maxScroll() float64 {
	if len(p.sections) == 0 || p.viewportH <= 0 {
		return 0
	}
	return float64((len(p.sections) - 1) * p.viewportH)
}

func (p *Page) clampTarget() {
	if p.scrollTarget < 0 {
		p.scrollTarget = 0
	}
	if max := p.maxScroll(); p.scrollTarget > max {
		p.scrollTarget = max
	}
}

// ScrollBy moves the scroll target by a pixel delta.
func (p *Page) ScrollBy(delta float64) {
	p.scrollTarget += delta
	p.clampTarget()
}

// ScrollToIndex eases the page to a section by position.
func (p *Page) ScrollToIndex(i int) {
	if len(p.sections) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(p.sections)-1 {
		i = len(p.sections) - 1
	}
	p.scrollTarget = float64(i * p.viewportH)
}

// ScrollToSection eases the page to a section by ID. Unknown IDs are
// reported, not scrolled to.
func (p *Page) ScrollToSection(id string) bool {
	idx := sections.IndexOf(p.sections, id)
	if idx < 0 {
		return false
	}
	p.ScrollToIndex(idx)
	return true
}

// CurrentIndex returns the section the scroll target is settling on.
func (p *Page) CurrentIndex() int {
	if p.viewportH <= 0 {
		return 0
	}
	idx := int(math.Round(p.scrollTarget / float64(p.viewportH)))
	if idx < 0 {
		idx = 0
	}
	if idx > len(p.sections)-1 {
		idx = len(p.sections) - 1
	}
	return idx
}

// SectionCount returns the number of bands in the strip.
func (p *Page) SectionCount() int {
	return len(p.sections)
}

// Draw renders the backdrop and every band that intersects the screen.
func (p *Page) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	p.drawBackdrop(screen, w, h)

	if p.viewportH <= 0 {
		return
	}

	for i := range p.sections {
		top := float64(i*p.viewportH) - p.scroll
		if top >= float64(h) || top+float64(p.viewportH) <= 0 {
			continue
		}
		p.drawSection(screen, i, top)
	}

	p.drawNavDots(screen, w, h)
}

// drawBackdrop fills the screen through the theme's shader chain, or
// with the flat background color when no chain is configured.
func (p *Page) drawBackdrop(screen *ebiten.Image, w, h int) {
	if p.effects == nil {
		screen.Fill(style.Background)
		return
	}

	if p.base == nil || p.base.Bounds().Dx() != w || p.base.Bounds().Dy() != h {
		if p.base != nil {
			p.base.Deallocate()
		}
		p.base = ebiten.NewImage(w, h)
	}
	p.base.Fill(style.Background)

	p.effects.IncrementFrame()
	if !p.effects.Apply(screen, p.base, style.CurrentBackdrop()) {
		screen.Fill(style.Background)
	}
}

// drawSection renders one band's content with its reveal animation:
// text fades in and rises a short distance as the counter fills.
func (p *Page) drawSection(screen *ebiten.Image, i int, top float64) {
	sec := p.sections[i]

	alpha := float32(1)
	if style.SectionRevealFrames > 0 {
		alpha = float32(p.revealFrames[i]) / float32(style.SectionRevealFrames)
	}
	if alpha <= 0 {
		return
	}
	rise := float64(1-alpha) * float64(style.LargeSpacing)

	face := *style.FontFace()
	_, lineH := text.Measure("Ag", face, 0)

	x := float64(style.SectionMargin)
	y := top + float64(style.SectionMargin) + rise
	maxW := float64(p.viewportW - 2*style.SectionMargin)

	if sec.ID != "hero" {
		kicker := fmt.Sprintf("%02d / %s", i+1, strings.ToUpper(sec.Title))
		drawLine(screen, kicker, face, x, y, style.Accent, alpha)
		y += lineH + float64(style.SmallSpacing)
	}

	headingFace := p.headingFace(sec.ID)
	_, headingH := text.Measure(sec.Heading, headingFace, 0)
	drawLine(screen, sec.Heading, headingFace, x, y, style.Text, alpha)
	y += headingH + float64(style.DefaultSpacing)

	for _, line := range sec.Body {
		display := line
		if truncated, ok := style.TruncateToWidth(display, face, maxW); ok {
			display = truncated
		}
		drawLine(screen, display, face, x, y, style.TextSecondary, alpha)
		y += lineH * 1.6
	}

	if sec.Email != "" {
		y += float64(style.SmallSpacing)
		emailFace := face
		if large := style.LargeFontFace(); large != nil {
			emailFace = large
		}
		drawLine(screen, sec.Email, emailFace, x, y, style.Accent, alpha)
		_, emailH := text.Measure(sec.Email, emailFace, 0)
		y += emailH
	}

	if sec.ID == "vault" && p.vault != nil {
		y += float64(style.DefaultSpacing)
		remaining := top + float64(p.viewportH) - float64(style.SectionMargin) - y
		if remaining > 0 {
			p.vault.Draw(screen, int(x), int(y), p.viewportW-2*style.SectionMargin, int(remaining), alpha)
		}
	}
}

// headingFace picks the display face for a section heading: the hero
// gets the oversized title face, everything else the large one. Both
// fall back toward the base face when font loading failed.
func (p *Page) headingFace(id string) text.Face {
	if id == "hero" {
		if title := style.TitleFontFace(); title != nil {
			return title
		}
	}
	if large := style.LargeFontFace(); large != nil {
		return large
	}
	return *style.FontFace()
}

// drawNavDots renders the right-edge section markers: filled when the
// section has been visited, outlined otherwise, ringed on the section
// currently targeted.
func (p *Page) drawNavDots(screen *ebiten.Image, w, h int) {
	n := len(p.sections)
	if n == 0 {
		return
	}

	spacing := float32(style.Px(28))
	cx := float32(w - style.LargeSpacing)
	cy := float32(h)/2 - spacing*float32(n-1)/2
	radius := float32(3 * style.DPIScale())
	current := p.CurrentIndex()

	for i, sec := range p.sections {
		y := cy + spacing*float32(i)
		if p.manager.HasVisited(sec.ID) {
			vector.DrawFilledCircle(screen, cx, y, radius, style.Accent, true)
		} else {
			vector.StrokeCircle(screen, cx, y, radius, float32(style.DPIScale()), style.TextSecondary, true)
		}
		if i == current {
			vector.StrokeCircle(screen, cx, y, radius+float32(4*style.DPIScale()), float32(style.DPIScale()), style.Accent, true)
		}
	}
}

// drawLine draws one line of text with a uniform color and alpha.
func drawLine(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, alpha float32) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	opts.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, s, face, opts)
}
