package prefs

import (
	"fmt"
	"math"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/user-none/folio/style"
	"github.com/user-none/folio/types"
)

const (
	volumeMin  = 0.0
	volumeMax  = 1.0
	volumeStep = 0.1
)

// AudioSection manages the ambient soundscape settings
type AudioSection struct {
	callback types.ScreenCallback
	ambience types.AmbienceControl

	// Live-updated text widget (avoid rebuild on +/- to preserve focus)
	volumeValueText *widget.Text
}

// NewAudioSection creates a new audio section
func NewAudioSection(callback types.ScreenCallback, ambience types.AmbienceControl) *AudioSection {
	return &AudioSection{
		callback: callback,
		ambience: ambience,
	}
}

// Build creates the audio section UI
func (a *AudioSection) Build(focus types.FocusManager) *widget.Container {
	section := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
	)

	// Ambient soundscape toggle
	section.AddChild(a.buildAmbienceRow(focus))

	// Volume control row
	section.AddChild(a.buildVolumeRow(focus))

	// Explainer under the controls
	note := widget.NewText(
		widget.TextOpts.Text("The soundscape is synthesized live. Nothing is streamed.", style.FontFace(), style.TextSecondary),
	)
	section.AddChild(note)

	a.setupNavigation(focus)

	return section
}

// setupNavigation registers navigation zones for the audio section
func (a *AudioSection) setupNavigation(focus types.FocusManager) {
	focus.RegisterNavZone("audio-ambience", types.NavZoneHorizontal, []string{"audio-ambience"}, 0)
	focus.RegisterNavZone("audio-volume", types.NavZoneGrid, []string{"audio-vol-dec", "audio-vol-inc"}, 2)

	focus.SetNavTransition("audio-ambience", types.DirDown, "audio-volume", types.NavIndexFirst)
	focus.SetNavTransition("audio-volume", types.DirUp, "audio-ambience", types.NavIndexFirst)
}

// buildAmbienceRow creates the soundscape on/off toggle row
func (a *AudioSection) buildAmbienceRow(focus types.FocusManager) *widget.Container {
	playing := a.ambience != nil && a.ambience.Playing()

	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Surface)),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, false}, []bool{true}),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, 0),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(style.SmallSpacing)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, style.SettingsRowHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)

	label := widget.NewText(
		widget.TextOpts.Text("Ambient Soundscape", style.FontFace(), style.Text),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
		),
	)
	row.AddChild(label)

	toggleBtn := widget.NewButton(
		widget.ButtonOpts.Image(style.ActiveButtonImage(playing)),
		widget.ButtonOpts.Text(boolToOnOff(playing), style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(style.PxFont(50), 0),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if a.ambience != nil {
				a.ambience.SetPlaying(!a.ambience.Playing())
			}
			focus.SetPendingFocus("audio-ambience")
			a.callback.RequestRebuild()
		}),
	)
	focus.RegisterFocusButton("audio-ambience", toggleBtn)
	row.AddChild(toggleBtn)

	return row
}

// buildVolumeRow creates the volume control row with [-] value [+] buttons
func (a *AudioSection) buildVolumeRow(focus types.FocusManager) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Surface)),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, false}, []bool{true}),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, 0),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(style.SmallSpacing)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, style.SettingsRowHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)

	labelText := widget.NewText(
		widget.TextOpts.Text("Volume", style.FontFace(), style.Text),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
		),
	)
	row.AddChild(labelText)

	// Controls group: [-] value [+]
	controls := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
		)),
	)

	// Value display (created first so click handlers can reference it)
	a.volumeValueText = widget.NewText(
		widget.TextOpts.Text(a.volumeLabel(), style.FontFace(), style.Text),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(style.PxFont(50), 0),
		),
	)

	// [-] button
	decBtn := widget.NewButton(
		widget.ButtonOpts.Image(style.ButtonImage()),
		widget.ButtonOpts.Text("-", style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.stepVolume(-volumeStep)
		}),
	)
	focus.RegisterFocusButton("audio-vol-dec", decBtn)
	controls.AddChild(decBtn)

	controls.AddChild(a.volumeValueText)

	// [+] button
	incBtn := widget.NewButton(
		widget.ButtonOpts.Image(style.ButtonImage()),
		widget.ButtonOpts.Text("+", style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.stepVolume(volumeStep)
		}),
	)
	focus.RegisterFocusButton("audio-vol-inc", incBtn)
	controls.AddChild(incBtn)

	row.AddChild(controls)

	return row
}

// stepVolume nudges the player volume and updates the label in-place
func (a *AudioSection) stepVolume(delta float64) {
	if a.ambience == nil {
		return
	}
	v := math.Round((a.ambience.Volume()+delta)*10) / 10
	if v < volumeMin {
		v = volumeMin
	}
	if v > volumeMax {
		v = volumeMax
	}
	a.ambience.SetVolume(v)
	a.updateVolumeLabel()
}

// volumeLabel returns the current volume as a percentage string
func (a *AudioSection) volumeLabel() string {
	if a.ambience == nil {
		return "0%"
	}
	return fmt.Sprintf("%d%%", int(math.Round(a.ambience.Volume()*100)))
}

// updateVolumeLabel updates the volume text label in-place
// without triggering a full UI rebuild, preserving keyboard focus.
func (a *AudioSection) updateVolumeLabel() {
	if a.volumeValueText != nil {
		a.volumeValueText.Label = a.volumeLabel()
	}
}

// boolToOnOff converts a bool to "On"/"Off" for toggle buttons
func boolToOnOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
