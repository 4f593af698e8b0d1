package tui

import (
	"fmt"

	"github.com/rivo/tview"
)

const (
	buttonCancel = "Cancel"
	buttonDelete = "Delete"
)

// DeleteConfirmDialog asks before a list is deleted. It does nothing on
// its own; the caller decides what confirm and cancel mean.
type DeleteConfirmDialog struct {
	host     *DialogHost
	modal    *tview.Modal
	open     bool
	listName string

	onConfirm func()
	onCancel  func()
}

// NewDeleteConfirmDialog creates the confirmation modal
func NewDeleteConfirmDialog(host *DialogHost, styles *Styles) *DeleteConfirmDialog {
	d := &DeleteConfirmDialog{host: host}

	d.modal = tview.NewModal().
		AddButtons([]string{buttonCancel, buttonDelete}).
		SetDoneFunc(func(_ int, label string) {
			if label == buttonDelete {
				d.Confirm()
				return
			}
			// Escape reports an empty label
			d.Cancel()
		})
	d.modal.SetTitle(" Delete List ")
	d.ApplyStyles(styles)

	return d
}

// ApplyStyles re-colors the modal
func (d *DeleteConfirmDialog) ApplyStyles(styles *Styles) {
	styles.ApplyModal(d.modal)
}

// Open shows the dialog for the named list
func (d *DeleteConfirmDialog) Open(listName string, onConfirm, onCancel func()) {
	if d.open {
		return
	}

	d.listName = listName
	d.onConfirm = onConfirm
	d.onCancel = onCancel
	d.modal.SetText(deletePrompt(listName))
	d.modal.SetFocus(0)

	d.open = true
	d.host.Show(d.modal, d.modal)
}

// deletePrompt is the confirmation text for a list
func deletePrompt(listName string) string {
	return fmt.Sprintf("Are you sure you want to delete %q?\nThis action cannot be undone.", listName)
}

// IsOpen reports whether the dialog is on screen
func (d *DeleteConfirmDialog) IsOpen() bool {
	return d.open
}

// Text returns the prompt currently shown
func (d *DeleteConfirmDialog) Text() string {
	return deletePrompt(d.listName)
}

// Confirm closes the dialog and runs the confirm callback
func (d *DeleteConfirmDialog) Confirm() {
	if !d.open {
		return
	}
	fn := d.onConfirm
	d.close()
	if fn != nil {
		fn()
	}
}

// Cancel closes the dialog and runs the cancel callback
func (d *DeleteConfirmDialog) Cancel() {
	if !d.open {
		return
	}
	fn := d.onCancel
	d.close()
	if fn != nil {
		fn()
	}
}

// Primitive returns the tview primitive
func (d *DeleteConfirmDialog) Primitive() tview.Primitive {
	return d.modal
}

func (d *DeleteConfirmDialog) close() {
	d.open = false
	d.onConfirm, d.onCancel = nil, nil
	d.host.Close()
}
