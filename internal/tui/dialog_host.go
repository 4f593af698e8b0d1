package tui

import (
	"github.com/rivo/tview"
)

// hostFrame remembers what was on screen before a dialog opened.
type hostFrame struct {
	root  tview.Primitive
	focus tview.Primitive
}

// DialogHost swaps the application root to a dialog and restores the
// previous root and focus when the dialog closes. Dialogs may stack.
type DialogHost struct {
	app     *tview.Application
	root    tview.Primitive
	frames  []hostFrame
	onClose func()
}

// NewDialogHost creates a host whose base screen is root
func NewDialogHost(app *tview.Application, root tview.Primitive) *DialogHost {
	return &DialogHost{app: app, root: root}
}

// SetOnClose registers a callback run after every dialog closes
func (h *DialogHost) SetOnClose(fn func()) {
	h.onClose = fn
}

// Show puts dialog on screen with focus on the given primitive
func (h *DialogHost) Show(dialog, focus tview.Primitive) {
	h.frames = append(h.frames, hostFrame{root: h.root, focus: h.app.GetFocus()})
	h.root = dialog
	h.app.SetRoot(dialog, true)
	if focus != nil {
		h.app.SetFocus(focus)
	}
}

// Close removes the top dialog and restores what it covered
func (h *DialogHost) Close() {
	if len(h.frames) == 0 {
		return
	}

	frame := h.frames[len(h.frames)-1]
	h.frames = h.frames[:len(h.frames)-1]

	h.root = frame.root
	h.app.SetRoot(frame.root, true)
	if frame.focus != nil {
		h.app.SetFocus(frame.focus)
	}

	if h.onClose != nil {
		h.onClose()
	}
}

// Depth returns the number of open dialogs
func (h *DialogHost) Depth() int {
	return len(h.frames)
}

// Root returns the primitive currently on screen
func (h *DialogHost) Root() tview.Primitive {
	return h.root
}

// centered wraps p in a flex layout that centers it at the given size
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
