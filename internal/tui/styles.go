package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kedare/basket/internal/theme"
	"github.com/rivo/tview"
)

// Styles holds the color scheme for the TUI
type Styles struct {
	Mode theme.Mode

	// Base colors
	BgColor      tcell.Color
	SurfaceColor tcell.Color
	FgColor      tcell.Color
	MutedColor   tcell.Color
	BorderColor  tcell.Color

	// Accent colors
	AccentColor tcell.Color
	DangerColor tcell.Color
	OKColor     tcell.Color

	// Table colors
	TableHeaderFg   tcell.Color
	TableSelectedBg tcell.Color
	TableSelectedFg tcell.Color
}

// DarkStyles returns the dark palette
func DarkStyles() *Styles {
	return &Styles{
		Mode: theme.Dark,

		BgColor:      tcell.ColorBlack,
		SurfaceColor: tcell.NewRGBColor(0x1c, 0x1c, 0x1e),
		FgColor:      tcell.ColorWhite,
		MutedColor:   tcell.ColorGray,
		BorderColor:  tcell.ColorDarkCyan,

		AccentColor: tcell.ColorAqua,
		DangerColor: tcell.ColorRed,
		OKColor:     tcell.ColorGreen,

		TableHeaderFg:   tcell.ColorAqua,
		TableSelectedBg: tcell.ColorDarkCyan,
		TableSelectedFg: tcell.ColorWhite,
	}
}

// LightStyles returns the light palette
func LightStyles() *Styles {
	return &Styles{
		Mode: theme.Light,

		BgColor:      tcell.ColorWhite,
		SurfaceColor: tcell.NewRGBColor(0xf2, 0xf2, 0xf7),
		FgColor:      tcell.ColorBlack,
		MutedColor:   tcell.ColorDimGray,
		BorderColor:  tcell.ColorSteelBlue,

		AccentColor: tcell.ColorDodgerBlue,
		DangerColor: tcell.ColorFireBrick,
		OKColor:     tcell.ColorGreen,

		TableHeaderFg:   tcell.ColorNavy,
		TableSelectedBg: tcell.ColorLightSteelBlue,
		TableSelectedFg: tcell.ColorBlack,
	}
}

// StylesFor returns the palette for a theme mode
func StylesFor(mode theme.Mode) *Styles {
	if mode == theme.Dark {
		return DarkStyles()
	}
	return LightStyles()
}

// ApplyTable styles a table and its selection
func (s *Styles) ApplyTable(table *tview.Table) {
	table.SetBackgroundColor(s.BgColor)
	table.SetBorderColor(s.BorderColor)
	table.SetTitleColor(s.AccentColor)
	table.SetSelectedStyle(tcell.StyleDefault.
		Background(s.TableSelectedBg).
		Foreground(s.TableSelectedFg))
}

// ApplyInput styles an input field
func (s *Styles) ApplyInput(input *tview.InputField) {
	input.SetBackgroundColor(s.BgColor)
	input.SetLabelColor(s.AccentColor)
	input.SetFieldBackgroundColor(s.SurfaceColor)
	input.SetFieldTextColor(s.FgColor)
	input.SetPlaceholderTextColor(s.MutedColor)
}

// ApplyText styles a text view
func (s *Styles) ApplyText(view *tview.TextView) {
	view.SetBackgroundColor(s.BgColor)
	view.SetTextColor(s.FgColor)
	view.SetBorderColor(s.BorderColor)
	view.SetTitleColor(s.AccentColor)
}

// ApplyForm styles a form, its fields and buttons
func (s *Styles) ApplyForm(form *tview.Form) {
	form.SetBackgroundColor(s.BgColor)
	form.SetBorderColor(s.BorderColor)
	form.SetTitleColor(s.AccentColor)
	form.SetLabelColor(s.AccentColor)
	form.SetFieldBackgroundColor(s.SurfaceColor)
	form.SetFieldTextColor(s.FgColor)
	form.SetButtonBackgroundColor(s.SurfaceColor)
	form.SetButtonTextColor(s.FgColor)
}

// ApplyModal styles a confirmation modal
func (s *Styles) ApplyModal(modal *tview.Modal) {
	modal.SetBackgroundColor(s.SurfaceColor)
	modal.SetTextColor(s.FgColor)
	modal.SetBorderColor(s.DangerColor)
	modal.SetButtonBackgroundColor(s.BgColor)
	modal.SetButtonTextColor(s.FgColor)
}

// Tag returns a tview color tag for c
func Tag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", c.Hex())
}

// BoldTag returns a tview tag for bold text in color c
func BoldTag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "[-::b]"
	}
	return fmt.Sprintf("[#%06x::b]", c.Hex())
}

// Colorize wraps text in a color tag and resets the color afterwards
func Colorize(c tcell.Color, text string) string {
	return Tag(c) + text + "[-]"
}
