package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// HelpSection groups shortcuts under a heading
type HelpSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpView displays keyboard shortcuts
type HelpView struct {
	host     *DialogHost
	textView *tview.TextView
	layout   *tview.Flex
	status   *tview.TextView
	styles   *Styles
	open     bool
}

// NewHelpView creates a new help view
func NewHelpView(host *DialogHost, styles *Styles) *HelpView {
	view := &HelpView{host: host, styles: styles}

	view.textView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	view.textView.SetBorder(true).
		SetTitle(" Keyboard Shortcuts ").
		SetTitleAlign(tview.AlignCenter)

	view.status = tview.NewTextView().
		SetDynamicColors(true).
		SetText(" [yellow]Esc[-] back  [yellow]?[-] close help")

	view.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(view.textView, 0, 1, true).
		AddItem(view.status, 1, 0, false)

	view.textView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && (event.Rune() == '?' || event.Rune() == 'q')) {
			view.Close()
			return nil
		}
		return event
	})

	view.ApplyStyles(styles)

	return view
}

// ApplyStyles re-colors the view
func (v *HelpView) ApplyStyles(styles *Styles) {
	v.styles = styles
	v.layout.SetBackgroundColor(styles.BgColor)
	styles.ApplyText(v.textView)
	styles.ApplyText(v.status)
}

// Open renders the sections and shows the view
func (v *HelpView) Open(sections ...HelpSection) {
	if v.open {
		return
	}
	v.textView.SetText(renderHelp(sections, v.styles))
	v.textView.ScrollToBeginning()
	v.open = true
	v.host.Show(v.layout, v.textView)
}

// Close hides the view
func (v *HelpView) Close() {
	if !v.open {
		return
	}
	v.open = false
	v.host.Close()
}

// IsOpen reports whether the view is on screen
func (v *HelpView) IsOpen() bool {
	return v.open
}

// Text returns the rendered help text
func (v *HelpView) Text() string {
	return v.textView.GetText(false)
}

func renderHelp(sections []HelpSection, styles *Styles) string {
	var b strings.Builder

	b.WriteString(BoldTag(styles.AccentColor) + "basket - Keyboard Shortcuts[-::-]\n")

	for _, section := range sections {
		fmt.Fprintf(&b, "\n[yellow]%s[-]\n", section.Title)
		for _, entry := range section.Entries {
			fmt.Fprintf(&b, "  %s%-10s[-] %s\n", Tag(styles.FgColor), tview.Escape(entry.Key), tview.Escape(entry.Description))
		}
	}

	b.WriteString("\n" + Colorize(styles.MutedColor, "Press Esc or ? to close this help") + "\n")

	return b.String()
}
