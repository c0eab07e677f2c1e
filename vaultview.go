package folio

import (
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/folio/achievements"
	"github.com/user-none/folio/style"
)

// VaultView renders the achievement vault inside its page band: a badge
// grid, a progress bar, and the unlock tally. The panel is rasterized
// once and cached; it rebuilds when the width, theme, font scale, or
// unlock state changes, or when MarkDirty is called.
type VaultView struct {
	manager *achievements.Manager

	mu    sync.Mutex
	dirty bool

	panel        *ebiten.Image
	cachedWidth  int
	cachedTheme  string
	cachedScale  float64
	cachedUnlock int
}

// NewVaultView creates a vault view over the given manager.
func NewVaultView(manager *achievements.Manager) *VaultView {
	return &VaultView{manager: manager}
}

// MarkDirty schedules a panel rebuild on the next draw. Safe to call
// from unlock callbacks on any goroutine.
func (v *VaultView) MarkDirty() {
	v.mu.Lock()
	v.dirty = true
	v.mu.Unlock()
}

func (v *VaultView) consumeDirty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	d := v.dirty
	v.dirty = false
	return d
}

// Draw renders the vault panel into the given area, vertically centered
// when there is room. Alpha is applied to the whole panel so the page's
// section reveal can fade it in.
func (v *VaultView) Draw(screen *ebiten.Image, x, y, w, h int, alpha float32) {
	if w <= 0 || h <= 0 {
		return
	}

	progress := v.manager.Progress()
	if v.consumeDirty() || v.panel == nil ||
		v.cachedWidth != w ||
		v.cachedTheme != style.CurrentThemeName ||
		v.cachedScale != style.FontScale() ||
		v.cachedUnlock != progress.Unlocked {
		v.rebuildPanel(w, progress)
	}
	if v.panel == nil {
		return
	}

	bounds := v.panel.Bounds()
	py := y
	if h > bounds.Dy() {
		py = y + (h-bounds.Dy())/2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(py))
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(v.panel, op)
}

// rebuildPanel rasterizes the badge grid, progress bar, and tally into
// a fresh panel image of the given width.
func (v *VaultView) rebuildPanel(w int, progress achievements.Progress) {
	if v.panel != nil {
		v.panel.Deallocate()
		v.panel = nil
	}

	defs := v.manager.Definitions()
	if len(defs) == 0 {
		return
	}

	columns := len(defs)
	if w < columns*(style.AchievementBadgeSize+style.DefaultPadding) {
		columns = (columns + 1) / 2
	}
	if columns < 1 {
		columns = 1
	}
	rows := (len(defs) + columns - 1) / columns

	cellW := w / columns
	rowH := style.AchievementRowHeight
	gridH := rows * rowH

	barW := style.ProgressBarWidth
	if barW > w-2*style.DefaultPadding {
		barW = w - 2*style.DefaultPadding
	}
	barH := style.ProgressBarHeight

	face := *style.FontFace()
	_, lineH := text.Measure("Ag", face, 0)

	panelH := gridH + style.DefaultSpacing + barH + style.SmallSpacing + int(lineH) + style.SmallSpacing
	panel := ebiten.NewImage(w, panelH)

	for i, def := range defs {
		col := i % columns
		row := i / columns
		cellX := col * cellW
		cellY := row * rowH
		v.drawBadgeCell(panel, def, cellX, cellY, cellW, face)
	}

	barX := (w - barW) / 2
	barY := gridH + style.DefaultSpacing
	drawProgressBar(panel, barX, barY, barW, barH, progress)

	label := countLabel(progress)
	labelW, _ := text.Measure(label, face, 0)
	labelOpts := &text.DrawOptions{}
	labelOpts.GeoM.Translate((float64(w)-labelW)/2, float64(barY+barH+style.SmallSpacing))
	labelOpts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(panel, label, face, labelOpts)

	v.panel = panel
	v.cachedWidth = w
	v.cachedTheme = style.CurrentThemeName
	v.cachedScale = style.FontScale()
	v.cachedUnlock = progress.Unlocked
}

// drawBadgeCell renders one achievement badge with its title centered
// in the given cell. Locked badges are grayscaled and dimmed.
func (v *VaultView) drawBadgeCell(panel *ebiten.Image, def achievements.Achievement, cellX, cellY, cellW int, face text.Face) {
	badgeSize := style.AchievementBadgeSize
	badge := buildBadgeArt(def.Icon, badgeSize)
	if !def.Unlocked {
		gray := style.ApplyGrayscale(badge)
		badge.Deallocate()
		badge = gray
	}

	badgeX := cellX + (cellW-badgeSize)/2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(badgeX), float64(cellY))
	if !def.Unlocked {
		op.ColorScale.ScaleAlpha(0.45)
	}
	panel.DrawImage(badge, op)
	badge.Deallocate()

	title := def.Title
	maxTitleW := float64(cellW - 2*style.TinySpacing)
	if truncated, ok := style.TruncateToWidth(title, face, maxTitleW); ok {
		title = truncated
	}
	titleW, _ := text.Measure(title, face, 0)
	titleOpts := &text.DrawOptions{}
	titleOpts.GeoM.Translate(float64(cellX)+(float64(cellW)-titleW)/2, float64(cellY+badgeSize+style.TinySpacing))
	if def.Unlocked {
		titleOpts.ColorScale.ScaleWithColor(style.Text)
	} else {
		titleOpts.ColorScale.ScaleWithColor(style.TextSecondary)
	}
	text.Draw(panel, title, face, titleOpts)
}

// buildBadgeArt draws a glyph badge at full color: surface fill, accent
// border, centered glyph. The caller owns the returned image.
func buildBadgeArt(glyph string, size int) *ebiten.Image {
	badge := ebiten.NewImage(size, size)
	badge.Fill(style.Surface)

	accent := style.Accent
	borderSize := style.AchievementNotifyBorder
	for x := 0; x < size; x++ {
		for y := 0; y < borderSize; y++ {
			badge.Set(x, y, accent)
			badge.Set(x, size-1-y, accent)
		}
	}
	for y := 0; y < size; y++ {
		for x := 0; x < borderSize; x++ {
			badge.Set(x, y, accent)
			badge.Set(size-1-x, y, accent)
		}
	}

	face := style.LargeFontFace()
	if face != nil {
		glyphW, glyphH := text.Measure(glyph, face, 0)
		glyphOpts := &text.DrawOptions{}
		glyphOpts.GeoM.Translate((float64(size)-glyphW)/2, (float64(size)-glyphH)/2)
		glyphOpts.ColorScale.ScaleWithColor(accent)
		text.Draw(badge, glyph, face, glyphOpts)
	}
	return badge
}

// drawProgressBar renders the vault progress bar: border frame, surface
// track, accent fill proportional to the unlock ratio.
func drawProgressBar(panel *ebiten.Image, x, y, w, h int, progress achievements.Progress) {
	if w <= 0 || h <= 0 {
		return
	}

	track := panel.SubImage(rectAt(x, y, w, h)).(*ebiten.Image)
	track.Fill(style.Border)

	inset := style.Px(2)
	innerW := w - 2*inset
	innerH := h - 2*inset
	if innerW <= 0 || innerH <= 0 {
		return
	}
	inner := panel.SubImage(rectAt(x+inset, y+inset, innerW, innerH)).(*ebiten.Image)
	inner.Fill(style.Surface)

	if progress.Total == 0 || progress.Unlocked == 0 {
		return
	}
	fillW := innerW * progress.Unlocked / progress.Total
	if fillW <= 0 {
		return
	}
	fill := panel.SubImage(rectAt(x+inset, y+inset, fillW, innerH)).(*ebiten.Image)
	fill.Fill(style.Accent)
}

// countLabel formats the vault tally line.
func countLabel(progress achievements.Progress) string {
	return fmt.Sprintf("%d / %d Achievements Unlocked", progress.Unlocked, progress.Total)
}

func rectAt(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
