package folio

import (
	"bytes"
	"image"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/user-none/folio/achievements"
	"github.com/user-none/folio/style"
)

// Notification renders transient feedback: small notices in the
// bottom-right corner and the achievement toast banner at top-center.
// Toast lifecycle (ordering, 3s visible, 300ms exit) is owned by
// achievements.Queue; this type draws whatever the queue presents.
type Notification struct {
	mu sync.Mutex

	// Notice state (bottom-right)
	message   string
	startTime time.Time
	duration  time.Duration

	// Toast state (top-center), driven by queue callbacks
	toast       achievements.Toast
	hasToast    bool
	presentedAt time.Time
	dismissedAt time.Time // zero while fully visible

	// Pre-allocated images for rendering (avoid per-frame allocations)
	defaultBg    *ebiten.Image
	toastBg      *ebiten.Image
	lastBgWidth  int
	lastBgHeight int

	// Cached badge for the current toast glyph
	badge      *ebiten.Image
	badgeGlyph string
	badgeTheme string

	// Audio player for notification sounds (separate from the ambient pad)
	notifPlayer *oto.Player
}

// NewNotification creates a new notification presenter
func NewNotification() *Notification {
	return &Notification{}
}

// PlaySound plays sound data through a one-shot oto player.
// Sound data should be 48kHz stereo S16LE format.
func (n *Notification) PlaySound(soundData []byte) {
	if len(soundData) == 0 {
		return
	}

	ctx, err := ensureOtoContext()
	if err != nil {
		log.Printf("Warning: notification audio not available: %v", err)
		return
	}

	n.mu.Lock()
	// Close previous player if still active
	if n.notifPlayer != nil {
		n.notifPlayer.Close()
	}
	n.notifPlayer = ctx.NewPlayer(bytes.NewReader(soundData))
	n.notifPlayer.Play()
	n.mu.Unlock()
}

// Close cleans up audio resources
func (n *Notification) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.notifPlayer != nil {
		n.notifPlayer.Close()
		n.notifPlayer = nil
	}
}

// Show displays a notice message
func (n *Notification) Show(message string, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = message
	n.startTime = time.Now()
	n.duration = duration
}

// ShowDefault displays a notice with the default 3 second duration
func (n *Notification) ShowDefault(message string) {
	n.Show(message, 3*time.Second)
}

// ShowShort displays a notice with 1 second duration (quick confirmations)
func (n *Notification) ShowShort(message string) {
	n.Show(message, 1*time.Second)
}

// IsVisible returns whether a notice is currently visible
func (n *Notification) IsVisible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.message == "" {
		return false
	}
	return time.Since(n.startTime) < n.duration
}

// Clear removes the current notice. The toast is untouched: a presented
// toast always completes its display cycle.
func (n *Notification) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = ""
}

// PresentToast is the achievements.Queue presentation callback
func (n *Notification) PresentToast(t achievements.Toast) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toast = t
	n.hasToast = true
	n.presentedAt = time.Now()
	n.dismissedAt = time.Time{}
}

// DismissToast is the achievements.Queue dismissal callback. It starts
// the exit fade; the queue advances to the next toast on its own clock.
func (n *Notification) DismissToast() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.hasToast {
		return
	}
	n.dismissedAt = time.Now()
}

// ToastVisible reports whether a toast banner is on screen (including
// during the exit fade).
func (n *Notification) ToastVisible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.toastVisibleLocked()
}

func (n *Notification) toastVisibleLocked() bool {
	if !n.hasToast {
		return false
	}
	if n.dismissedAt.IsZero() {
		return true
	}
	return time.Since(n.dismissedAt) < achievements.ToastExitFor
}

// Draw renders the notice and the toast banner
func (n *Notification) Draw(screen *ebiten.Image) {
	n.mu.Lock()

	// Drop the toast once the exit fade completes
	if n.hasToast && !n.toastVisibleLocked() {
		n.hasToast = false
	}

	// Copy fields under lock
	message := n.message
	noticeVisible := message != "" && time.Since(n.startTime) < n.duration
	toast := n.toast
	toastVisible := n.hasToast
	alpha := n.toastAlphaLocked()
	n.mu.Unlock()

	if toastVisible {
		n.drawToast(screen, toast, alpha)
	}
	if noticeVisible {
		n.drawNotice(screen, message)
	}
}

// toastAlphaLocked computes the fade level: a quick fade-in after
// presentation and the fixed exit fade after dismissal. Caller holds n.mu.
func (n *Notification) toastAlphaLocked() float32 {
	if !n.hasToast {
		return 0
	}
	if !n.dismissedAt.IsZero() {
		out := 1 - float64(time.Since(n.dismissedAt))/float64(achievements.ToastExitFor)
		if out < 0 {
			out = 0
		}
		return float32(out)
	}
	in := float64(time.Since(n.presentedAt)) / float64(achievements.ToastExitFor)
	if in > 1 {
		in = 1
	}
	return float32(in)
}

// drawNotice renders a small notice in the bottom-right corner
func (n *Notification) drawNotice(screen *ebiten.Image, message string) {
	bounds := screen.Bounds()
	screenWidth := bounds.Dx()
	screenHeight := bounds.Dy()

	// Calculate text size
	textWidth, textHeight := text.Measure(message, *style.FontFace(), 0)

	// Padding
	padding := style.OverlayPadding
	bgWidth := int(textWidth) + padding*2
	bgHeight := int(textHeight) + padding*2

	// Position: bottom-right, margin
	margin := style.OverlayMargin
	bgX := screenWidth - bgWidth - margin
	bgY := screenHeight - bgHeight - margin

	// Reuse or create background image
	if n.defaultBg == nil || n.defaultBg.Bounds().Dx() < bgWidth || n.defaultBg.Bounds().Dy() < bgHeight {
		n.defaultBg = ebiten.NewImage(bgWidth, bgHeight)
	}
	n.defaultBg.Clear()
	overlayBg := style.OverlayBackground
	overlayBg.A = 153 // 60% opacity
	n.defaultBg.Fill(overlayBg)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bgX), float64(bgY))
	screen.DrawImage(n.defaultBg.SubImage(image.Rect(0, 0, bgWidth, bgHeight)).(*ebiten.Image), opts)

	// Draw text centered in background
	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate(float64(bgX+padding), float64(bgY+padding))
	textOpts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(screen, message, *style.FontFace(), textOpts)
}

// drawToast renders the achievement banner at top-center
func (n *Notification) drawToast(screen *ebiten.Image, toast achievements.Toast, alpha float32) {
	bounds := screen.Bounds()
	screenWidth := bounds.Dx()

	// Use large font for the achievement title, regular for the header
	largeFace := style.LargeFontFace()
	if largeFace == nil {
		n.drawNotice(screen, toast.Text)
		return
	}

	badgeSize := style.AchievementNotifyBadgeSize
	badgeSpacing := style.OverlayPadding

	// Measure text
	headerWidth, headerHeight := text.Measure(toast.Title, *style.FontFace(), 0)
	titleText := toast.Text
	titleWidth, titleHeight := text.Measure(titleText, largeFace, 0)

	paddingH := style.AchievementNotifyPaddingH
	paddingV := style.AchievementNotifyPaddingV
	spacing := style.AchievementNotifySpacing
	margin := style.AchievementNotifyMargin

	// Maximum background width: screen width minus margin on each side
	maxBgWidth := screenWidth - margin*2
	maxAvailTextWidth := float64(maxBgWidth - paddingH*2 - badgeSize - badgeSpacing)

	// Truncate the title if it exceeds available text width
	if titleWidth > maxAvailTextWidth {
		titleText, _ = style.TruncateToWidth(titleText, largeFace, maxAvailTextWidth)
		titleWidth, titleHeight = text.Measure(titleText, largeFace, 0)
	}

	maxTextWidth := headerWidth
	if titleWidth > maxTextWidth {
		maxTextWidth = titleWidth
	}

	// Content width includes badge + spacing + text
	contentWidth := int(maxTextWidth) + badgeSize + badgeSpacing

	bgWidth := contentWidth + paddingH*2
	if bgWidth > maxBgWidth {
		bgWidth = maxBgWidth
	}
	bgHeight := paddingV*2 + int(headerHeight) + spacing + int(titleHeight)
	// Ensure minimum height for the badge
	if bgHeight < badgeSize+paddingV*2 {
		bgHeight = badgeSize + paddingV*2
	}

	// Position: top-center
	bgX := (screenWidth - bgWidth) / 2
	bgY := margin

	// Reuse or create background image (only recreate if size changed)
	if n.toastBg == nil || n.lastBgWidth != bgWidth || n.lastBgHeight != bgHeight {
		n.toastBg = ebiten.NewImage(bgWidth, bgHeight)
		n.lastBgWidth = bgWidth
		n.lastBgHeight = bgHeight

		toastFill := style.OverlayBackground
		toastFill.A = 240 // 94% opacity
		n.toastBg.Fill(toastFill)

		// Accent border
		accent := style.Accent
		borderSize := style.AchievementNotifyBorder
		for x := 0; x < bgWidth; x++ {
			for y := 0; y < borderSize; y++ {
				n.toastBg.Set(x, y, accent)            // Top
				n.toastBg.Set(x, bgHeight-1-y, accent) // Bottom
			}
		}
		for y := 0; y < bgHeight; y++ {
			for x := 0; x < borderSize; x++ {
				n.toastBg.Set(x, y, accent)           // Left
				n.toastBg.Set(bgWidth-1-x, y, accent) // Right
			}
		}
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bgX), float64(bgY))
	opts.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(n.toastBg, opts)

	// Badge on the left, vertically centered
	badge := n.badgeFor(toast.Icon, badgeSize)
	badgeOpts := &ebiten.DrawImageOptions{}
	badgeY := float64(bgY) + float64(bgHeight-badgeSize)/2
	badgeOpts.GeoM.Translate(float64(bgX+paddingH), badgeY)
	badgeOpts.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(badge, badgeOpts)

	textStartX := float64(bgX + paddingH + badgeSize + badgeSpacing)

	// Header (small, accent)
	headerY := float64(bgY + paddingV)
	headerOpts := &text.DrawOptions{}
	headerOpts.GeoM.Translate(textStartX, headerY)
	headerOpts.ColorScale.ScaleWithColor(style.Accent)
	headerOpts.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, toast.Title, *style.FontFace(), headerOpts)

	// Title (large, primary text color)
	titleY := headerY + headerHeight + float64(spacing)
	titleOpts := &text.DrawOptions{}
	titleOpts.GeoM.Translate(textStartX, titleY)
	titleOpts.ColorScale.ScaleWithColor(style.Text)
	titleOpts.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, titleText, largeFace, titleOpts)
}

// badgeFor returns the glyph badge for a toast icon, rebuilding the
// cached image when the glyph, theme or size changes.
func (n *Notification) badgeFor(glyph string, size int) *ebiten.Image {
	if n.badge != nil && n.badgeGlyph == glyph && n.badgeTheme == style.CurrentThemeName && n.badge.Bounds().Dx() == size {
		return n.badge
	}

	if n.badge != nil {
		n.badge.Deallocate()
	}

	badge := ebiten.NewImage(size, size)
	badge.Fill(style.Surface)

	// Accent border
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

	// Centered glyph
	face := style.LargeFontFace()
	if face != nil {
		glyphW, glyphH := text.Measure(glyph, face, 0)
		glyphOpts := &text.DrawOptions{}
		glyphOpts.GeoM.Translate((float64(size)-glyphW)/2, (float64(size)-glyphH)/2)
		glyphOpts.ColorScale.ScaleWithColor(style.Accent)
		text.Draw(badge, glyph, face, glyphOpts)
	}

	n.badge = badge
	n.badgeGlyph = glyph
	n.badgeTheme = style.CurrentThemeName
	return n.badge
}
