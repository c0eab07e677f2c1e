package folio

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/user-none/folio/style"
	"github.com/user-none/folio/types"
)

// UINavigation represents the result of UI input polling
type UINavigation struct {
	Direction    int  // 0=none, 1=up, 2=down, 3=left, 4=right
	Back         bool // Escape just pressed
	FocusChanged bool // True if navigation caused focus change this frame
}

// InputManager handles keyboard input for overlay navigation.
// It tracks held arrow keys and accelerates the repeat rate the longer
// a direction stays down, so long lists stay quick to traverse.
type InputManager struct {
	// Navigation state for repeat handling
	direction    int           // 0=none, 1=up, 2=down, 3=left, 4=right
	startTime    time.Time     // When direction was first pressed
	lastMove     time.Time     // When last move occurred
	repeatDelay  time.Duration // Current repeat interval
	focusChanged bool          // Track if focus changed this frame
}

// NewInputManager creates a new input manager
func NewInputManager() *InputManager {
	return &InputManager{
		repeatDelay: style.NavStartInterval,
	}
}

// Update polls global key state. Should be called once per frame.
// Returns F12 screenshot and F11 fullscreen toggle requests.
func (im *InputManager) Update() (screenshotRequested, fullscreenToggle bool) {
	screenshotRequested = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	fullscreenToggle = inpututil.IsKeyJustPressed(ebiten.KeyF11)
	return screenshotRequested, fullscreenToggle
}

// GetUINavigation returns the current overlay navigation state.
// Arrow keys navigate with repeat acceleration; Escape backs out.
func (im *InputManager) GetUINavigation() UINavigation {
	result := UINavigation{}

	// Determine desired direction (vertical takes priority for menu-like behavior)
	desiredDir := types.DirNone
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		desiredDir = types.DirUp
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		desiredDir = types.DirDown
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		desiredDir = types.DirLeft
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		desiredDir = types.DirRight
	}

	now := time.Now()
	im.focusChanged = false

	if desiredDir == types.DirNone {
		// No direction pressed - reset state
		im.direction = types.DirNone
		im.repeatDelay = style.NavStartInterval
	} else if desiredDir != im.direction {
		// Direction changed - move immediately and start tracking
		im.direction = desiredDir
		im.startTime = now
		im.lastMove = now
		im.repeatDelay = style.NavStartInterval
		im.focusChanged = true
		result.Direction = desiredDir
	} else {
		// Same direction held - check for repeat
		holdDuration := now.Sub(im.startTime)
		timeSinceLastMove := now.Sub(im.lastMove)

		if holdDuration >= style.NavInitialDelay && timeSinceLastMove >= im.repeatDelay {
			// Time to repeat
			im.focusChanged = true
			im.lastMove = now
			result.Direction = desiredDir

			// Accelerate (decrease interval)
			im.repeatDelay -= style.NavAcceleration
			if im.repeatDelay < style.NavMinInterval {
				im.repeatDelay = style.NavMinInterval
			}
		}
	}

	result.FocusChanged = im.focusChanged
	result.Back = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	return result
}
