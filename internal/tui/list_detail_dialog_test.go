package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kedare/basket/internal/shopping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDetail(t *testing.T) (*testScreen, *ListDetailDialog, shopping.ShoppingList) {
	t.Helper()

	ts := newTestScreen(t)
	list := ts.collection.Create("Market", shopping.CategoryGroceries)
	ts.Refresh()

	detail := ts.DetailDialog()
	require.True(t, detail.Open(list.ID))

	return ts, detail, list
}

func TestDetailOpenUnknownList(t *testing.T) {
	ts := newTestScreen(t)

	assert.False(t, ts.DetailDialog().Open("missing"))
	assert.Equal(t, 0, ts.host.Depth())
}

func TestDetailEmptyState(t *testing.T) {
	_, detail, _ := openDetail(t)

	assert.Equal(t, emptyItemsText, detail.items.GetCell(0, 0).Text)
	assert.Equal(t, "", detail.SelectedItemID())
	assert.Equal(t, defaultQuantityText, detail.Quantity())
}

func TestDetailAddItem(t *testing.T) {
	_, detail, list := openDetail(t)

	detail.SetItemName("   ")
	assert.False(t, detail.AddItem(), "blank names are ignored")

	detail.SetItemName(" Milk ")
	detail.SetQuantity("3")
	require.True(t, detail.AddItem())

	assert.Equal(t, "", detail.ItemName())
	assert.Equal(t, defaultQuantityText, detail.Quantity(), "quantity resets after each add")

	detail.SetItemName("Eggs")
	detail.SetQuantity("a dozen")
	require.True(t, detail.AddItem())

	current, ok := detail.List()
	require.True(t, ok)
	require.Len(t, current.Items, 2)
	assert.Equal(t, list.ID, current.ID)
	assert.Equal(t, "Milk", current.Items[0].Name)
	assert.Equal(t, 3, current.Items[0].Quantity)
	assert.Equal(t, "Eggs", current.Items[1].Name)
	assert.Equal(t, 1, current.Items[1].Quantity, "unparseable quantity becomes 1")

	assert.Equal(t, "Milk", detail.items.GetCell(0, 1).Text)
	assert.Equal(t, "×3", detail.items.GetCell(0, 2).Text)
	assert.Equal(t, current.Items[1].ID, detail.SelectedItemID(), "new item is selected")
}

func TestDetailToggleAndRemoveWithKeys(t *testing.T) {
	_, detail, _ := openDetail(t)
	detail.SetItemName("Milk")
	require.True(t, detail.AddItem())
	detail.SetItemName("Bread")
	require.True(t, detail.AddItem())

	detail.items.Select(0, 0)
	require.True(t, detail.keys.Handle(runeKey(' ')))

	current, _ := detail.List()
	assert.True(t, current.Items[0].Checked)
	assert.False(t, current.Items[1].Checked)
	assert.Equal(t, markChecked, detail.items.GetCell(0, 0).Text)

	detail.keys.Handle(runeKey(' '))
	current, _ = detail.List()
	assert.False(t, current.Items[0].Checked, "toggling twice restores the flag")

	require.True(t, detail.keys.Handle(runeKey('x')))
	current, _ = detail.List()
	require.Len(t, current.Items, 1)
	assert.Equal(t, "Bread", current.Items[0].Name)
	assert.Equal(t, current.Items[0].ID, detail.SelectedItemID())
}

func TestDetailRendersExternalChanges(t *testing.T) {
	ts, detail, list := openDetail(t)

	_, ok := ts.collection.Execute(shopping.AddItemCommand{ListID: list.ID, Name: "Apples", Quantity: "6"})
	require.True(t, ok)

	assert.Equal(t, "Apples", detail.items.GetCell(0, 1).Text)
	assert.Contains(t, detail.header.GetText(true), "1 item")
}

func TestDetailDeleteList(t *testing.T) {
	ts, detail, list := openDetail(t)

	require.True(t, detail.keys.Handle(runeKey('D')))
	confirm := ts.ConfirmDialog()
	require.True(t, confirm.IsOpen())
	assert.Equal(t, 2, ts.host.Depth())

	confirm.Cancel()
	assert.True(t, detail.IsOpen(), "cancel returns to the list")
	assert.Equal(t, detail.items, ts.app.GetFocus())
	_, ok := ts.collection.Get(list.ID)
	assert.True(t, ok)

	detail.RequestDelete()
	confirm.Confirm()

	assert.False(t, detail.IsOpen())
	assert.Equal(t, 0, ts.host.Depth())
	_, ok = ts.collection.Get(list.ID)
	assert.False(t, ok)
	assert.Empty(t, ts.VisibleLists())
	assert.Equal(t, "", ts.SelectedID())
	assert.Equal(t, ts.table, ts.app.GetFocus())
}

func TestDetailClosesWhenListDeletedElsewhere(t *testing.T) {
	ts, detail, list := openDetail(t)

	require.True(t, ts.collection.Delete(list.ID))

	assert.False(t, detail.IsOpen())
	assert.False(t, detail.AddItem())
	assert.Equal(t, 0, ts.host.Depth())
}

func TestDetailEscapeCloses(t *testing.T) {
	ts, detail, _ := openDetail(t)

	require.True(t, detail.keys.Handle(specialKey(tcell.KeyEscape)))
	assert.False(t, detail.IsOpen())
	assert.Equal(t, 0, ts.host.Depth())
}
