package prefs

import (
	"fmt"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/user-none/folio/achievements"
	"github.com/user-none/folio/storage"
	"github.com/user-none/folio/style"
	"github.com/user-none/folio/types"
)

// DataSection shows where preferences live on disk and offers a
// confirmed reset of all achievement progress.
type DataSection struct {
	callback types.ScreenCallback
	manager  *achievements.Manager
	store    *storage.Prefs

	// confirming gates the destructive reset behind a second click.
	// The flag survives rebuilds because the section outlives them.
	confirming bool
}

// NewDataSection creates a new data section
func NewDataSection(callback types.ScreenCallback, manager *achievements.Manager, store *storage.Prefs) *DataSection {
	return &DataSection{
		callback: callback,
		manager:  manager,
		store:    store,
	}
}

// Build creates the data section UI
func (d *DataSection) Build(focus types.FocusManager) *widget.Container {
	section := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
	)

	section.AddChild(d.buildLocationRow())
	section.AddChild(d.buildProgressRow())
	section.AddChild(d.buildResetRow(focus))

	d.setupNavigation(focus)

	return section
}

// setupNavigation registers navigation zones for the data section
func (d *DataSection) setupNavigation(focus types.FocusManager) {
	if d.confirming {
		focus.RegisterNavZone("data-reset", types.NavZoneHorizontal, []string{"data-reset-confirm", "data-reset-cancel"}, 0)
		return
	}
	focus.RegisterNavZone("data-reset", types.NavZoneHorizontal, []string{"data-reset"}, 0)
}

// buildLocationRow shows the folder preferences are written to
func (d *DataSection) buildLocationRow() *widget.Container {
	location := "Not available (nothing persists this session)"
	wasTruncated := false
	if d.store != nil && d.store.Available() {
		// Keep the tail of long paths; the directory name is what matters
		location, wasTruncated = style.TruncateStart(d.store.Dir(), 48)
	}

	valueOpts := []widget.WidgetOpt{
		widget.WidgetOpts.LayoutData(widget.GridLayoutData{
			VerticalPosition: widget.GridLayoutPositionCenter,
		}),
	}
	// Full path on hover when the display copy is cut down
	if wasTruncated {
		valueOpts = append(valueOpts, widget.WidgetOpts.ToolTip(
			widget.NewToolTip(
				widget.ToolTipOpts.Content(style.TooltipContent(d.store.Dir())),
			),
		))
	}

	row := d.buildLabelRow("Data Folder")
	value := widget.NewText(
		widget.TextOpts.Text(location, style.FontFace(), style.TextSecondary),
		widget.TextOpts.WidgetOpts(valueOpts...),
	)
	row.AddChild(value)

	return row
}

// buildProgressRow shows a summary of unlocked achievements
func (d *DataSection) buildProgressRow() *widget.Container {
	summary := "0 of 0 unlocked"
	if d.manager != nil {
		p := d.manager.Progress()
		summary = fmt.Sprintf("%d of %d unlocked", p.Unlocked, p.Total)
	}

	row := d.buildLabelRow("Achievements")
	value := widget.NewText(
		widget.TextOpts.Text(summary, style.FontFace(), style.TextSecondary),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
		),
	)
	row.AddChild(value)

	return row
}

// buildResetRow creates the reset control. The first click swaps the row
// into a confirm/cancel pair; only the confirm click erases progress.
func (d *DataSection) buildResetRow(focus types.FocusManager) *widget.Container {
	if d.confirming {
		return d.buildResetConfirmRow(focus)
	}

	row := d.buildLabelRow("Reset Progress")
	resetBtn := widget.NewButton(
		widget.ButtonOpts.Image(style.ButtonImage()),
		widget.ButtonOpts.Text("Reset...", style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			d.confirming = true
			focus.SetPendingFocus("data-reset-cancel")
			d.callback.RequestRebuild()
		}),
	)
	focus.RegisterFocusButton("data-reset", resetBtn)
	row.AddChild(resetBtn)

	return row
}

// buildResetConfirmRow creates the confirm/cancel pair shown after Reset
func (d *DataSection) buildResetConfirmRow(focus types.FocusManager) *widget.Container {
	row := d.buildLabelRow("Erase all achievements and visit history?")

	buttons := style.ButtonRow()

	confirmBtn := style.PrimaryTextButton("Erase", style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		d.confirming = false
		if d.manager != nil {
			d.manager.Reset()
		}
		focus.SetPendingFocus("data-reset")
		d.callback.RequestRebuild()
	})
	focus.RegisterFocusButton("data-reset-confirm", confirmBtn)
	buttons.AddChild(confirmBtn)

	cancelBtn := style.TextButton("Cancel", style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		d.confirming = false
		focus.SetPendingFocus("data-reset")
		d.callback.RequestRebuild()
	})
	focus.RegisterFocusButton("data-reset-cancel", cancelBtn)
	buttons.AddChild(cancelBtn)

	row.AddChild(buttons)

	return row
}

// buildLabelRow creates a Surface-backed two-column row with a left label.
// Callers add the right-hand control as the second grid cell.
func (d *DataSection) buildLabelRow(label string) *widget.Container {
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
		widget.TextOpts.Text(label, style.FontFace(), style.Text),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
		),
	)
	row.AddChild(labelText)

	return row
}
