package tui

import (
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

func TestDeleteConfirmCallbacks(t *testing.T) {
	app := tview.NewApplication()
	base := tview.NewBox()
	app.SetRoot(base, true)
	host := NewDialogHost(app, base)
	dialog := NewDeleteConfirmDialog(host, DarkStyles())

	var confirmed, cancelled int
	open := func() {
		dialog.Open("Market", func() { confirmed++ }, func() { cancelled++ })
	}

	open()
	assert.True(t, dialog.IsOpen())
	assert.Equal(t, dialog.Primitive(), host.Root())
	dialog.Cancel()
	assert.False(t, dialog.IsOpen())
	assert.Equal(t, base, host.Root())

	open()
	dialog.Confirm()

	assert.Equal(t, 1, confirmed)
	assert.Equal(t, 1, cancelled)

	dialog.Confirm()
	dialog.Cancel()
	assert.Equal(t, 1, confirmed, "nothing runs while closed")
	assert.Equal(t, 1, cancelled)
}

func TestDeleteConfirmNilCallbacks(t *testing.T) {
	app := tview.NewApplication()
	host := NewDialogHost(app, tview.NewBox())
	dialog := NewDeleteConfirmDialog(host, LightStyles())

	dialog.Open("Market", nil, nil)
	assert.NotPanics(t, dialog.Confirm)
	assert.False(t, dialog.IsOpen())
}

func TestDeletePrompt(t *testing.T) {
	assert.Equal(t, "Are you sure you want to delete \"Market\"?\nThis action cannot be undone.", deletePrompt("Market"))
}
