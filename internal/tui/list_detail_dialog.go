package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kedare/basket/internal/logger"
	"github.com/kedare/basket/internal/shopping"
	"github.com/rivo/tview"
)

const (
	defaultQuantityText = "1"
	emptyItemsText      = "No items yet"

	markChecked   = "✓"
	markUnchecked = "○"

	detailStatusText = " [yellow]Enter[-] add  [yellow]Tab[-] next field  [yellow]Space[-] toggle  [yellow]x[-] remove  [yellow]Shift+D[-] delete list  [yellow]Esc[-] close"
)

// ListDetailDialog shows one list and edits its items. It always reads the
// list from the collection, so what it renders is never a stale copy.
type ListDetailDialog struct {
	host       *DialogHost
	collection *shopping.Collection
	confirm    *DeleteConfirmDialog
	styles     *Styles
	keys       *KeyBindings

	header        *tview.TextView
	items         *tview.Table
	itemInput     *tview.InputField
	quantityInput *tview.InputField
	status        *tview.TextView
	layout        *tview.Flex

	listID   string
	open     bool
	itemName string
	quantity string
}

// NewListDetailDialog builds the dialog and subscribes it to collection changes
func NewListDetailDialog(host *DialogHost, collection *shopping.Collection, confirm *DeleteConfirmDialog, styles *Styles) *ListDetailDialog {
	d := &ListDetailDialog{
		host:       host,
		collection: collection,
		confirm:    confirm,
		styles:     styles,
		keys:       NewKeyBindings(),
		quantity:   defaultQuantityText,
	}

	d.header = tview.NewTextView().SetDynamicColors(true)

	d.items = tview.NewTable().
		SetSelectable(true, false).
		SetFixed(0, 0)
	d.items.SetBorder(true)

	d.itemInput = tview.NewInputField().
		SetLabel("Item ").
		SetPlaceholder("Add an item")
	d.itemInput.SetChangedFunc(func(text string) { d.itemName = text })

	d.quantityInput = tview.NewInputField().
		SetLabel(" Qty ").
		SetFieldWidth(5).
		SetText(defaultQuantityText)
	d.quantityInput.SetChangedFunc(func(text string) { d.quantity = text })

	d.itemInput.SetDoneFunc(d.inputDone(d.quantityInput))
	d.quantityInput.SetDoneFunc(d.inputDone(d.itemInput))

	d.status = tview.NewTextView().
		SetDynamicColors(true).
		SetText(detailStatusText)

	inputRow := tview.NewFlex().
		AddItem(d.itemInput, 0, 1, false).
		AddItem(d.quantityInput, 12, 0, false)

	d.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(d.header, 2, 0, false).
		AddItem(inputRow, 1, 0, false).
		AddItem(d.items, 0, 1, true).
		AddItem(d.status, 1, 0, false)

	d.setupKeys()
	d.items.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if d.keys.Handle(event) {
			return nil
		}
		return event
	})

	collection.Subscribe(shopping.ObserverFuncs{
		OnUpdated: func(list shopping.ShoppingList) {
			if d.open && list.ID == d.listID {
				d.render()
			}
		},
		OnDeleted: func(id string) {
			if d.open && id == d.listID {
				d.Close()
			}
		},
	})

	d.ApplyStyles(styles)

	return d
}

func (d *ListDetailDialog) setupKeys() {
	d.keys.RegisterKey(' ', "Toggle item", nil, func() bool {
		d.ToggleItem(d.SelectedItemID())
		return true
	})
	d.keys.RegisterKey('x', "Remove item", nil, func() bool {
		d.RemoveItem(d.SelectedItemID())
		return true
	})
	d.keys.RegisterKey('D', "Delete list", nil, func() bool {
		d.RequestDelete()
		return true
	})
	d.keys.RegisterKey('a', "Add item", nil, func() bool {
		d.host.app.SetFocus(d.itemInput)
		return true
	})
	d.keys.RegisterSpecial(tcell.KeyTab, "Focus item input", nil, func() bool {
		d.host.app.SetFocus(d.itemInput)
		return true
	})
	d.keys.RegisterSpecial(tcell.KeyEscape, "Close", nil, func() bool {
		d.Close()
		return true
	})
}

// inputDone handles Enter, Tab and Escape in the two input fields
func (d *ListDetailDialog) inputDone(next tview.Primitive) func(tcell.Key) {
	return func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			d.AddItem()
		case tcell.KeyTab:
			d.host.app.SetFocus(next)
		case tcell.KeyEscape, tcell.KeyBacktab:
			d.host.app.SetFocus(d.items)
		}
	}
}

// ApplyStyles re-colors every widget
func (d *ListDetailDialog) ApplyStyles(styles *Styles) {
	d.styles = styles
	d.layout.SetBackgroundColor(styles.BgColor)
	styles.ApplyText(d.header)
	styles.ApplyText(d.status)
	styles.ApplyTable(d.items)
	styles.ApplyInput(d.itemInput)
	styles.ApplyInput(d.quantityInput)
	if d.open {
		d.render()
	}
}

// Open shows the list with the given id. It reports false when no such list exists.
func (d *ListDetailDialog) Open(listID string) bool {
	if d.open {
		return false
	}
	if _, ok := d.collection.Get(listID); !ok {
		return false
	}

	d.listID = listID
	d.open = true
	d.SetItemName("")
	d.SetQuantity(defaultQuantityText)
	d.items.Select(0, 0)
	d.render()

	d.host.Show(d.layout, d.items)
	return true
}

// Close hides the dialog
func (d *ListDetailDialog) Close() {
	if !d.open {
		return
	}
	if d.confirm.IsOpen() {
		d.confirm.Cancel()
	}
	d.open = false
	d.listID = ""
	d.host.Close()
}

// IsOpen reports whether the dialog is on screen
func (d *ListDetailDialog) IsOpen() bool {
	return d.open
}

// ListID returns the id of the list being shown
func (d *ListDetailDialog) ListID() string {
	return d.listID
}

// List returns the current stored value of the shown list
func (d *ListDetailDialog) List() (shopping.ShoppingList, bool) {
	if !d.open {
		return shopping.ShoppingList{}, false
	}
	return d.collection.Get(d.listID)
}

// SetItemName replaces the item name field text
func (d *ListDetailDialog) SetItemName(name string) {
	d.itemName = name
	d.itemInput.SetText(name)
}

// ItemName returns the item name field text
func (d *ListDetailDialog) ItemName() string {
	return d.itemName
}

// SetQuantity replaces the quantity field text
func (d *ListDetailDialog) SetQuantity(text string) {
	d.quantity = text
	d.quantityInput.SetText(text)
}

// Quantity returns the quantity field text
func (d *ListDetailDialog) Quantity() string {
	return d.quantity
}

// AddItem adds the typed item. On success both fields reset.
func (d *ListDetailDialog) AddItem() bool {
	if !d.open {
		return false
	}

	list, ok := d.collection.Execute(shopping.AddItemCommand{
		ListID:   d.listID,
		Name:     d.itemName,
		Quantity: d.quantity,
	})
	if !ok {
		return false
	}

	logger.Log.Debugf("Added item to list %s (%d items)", list.ID, list.ItemCount())

	d.SetItemName("")
	d.SetQuantity(defaultQuantityText)
	d.items.Select(list.ItemCount()-1, 0)
	d.render()

	return true
}

// ToggleItem flips the checked flag of one item
func (d *ListDetailDialog) ToggleItem(itemID string) bool {
	if !d.open || itemID == "" {
		return false
	}
	_, ok := d.collection.Execute(shopping.ToggleItemCommand{ListID: d.listID, ItemID: itemID})
	return ok
}

// RemoveItem deletes one item
func (d *ListDetailDialog) RemoveItem(itemID string) bool {
	if !d.open || itemID == "" {
		return false
	}
	_, ok := d.collection.Execute(shopping.RemoveItemCommand{ListID: d.listID, ItemID: itemID})
	return ok
}

// SelectedItemID returns the id of the highlighted item, or "" when there is none
func (d *ListDetailDialog) SelectedItemID() string {
	row, _ := d.items.GetSelection()
	cell := d.items.GetCell(row, 0)
	if cell == nil {
		return ""
	}
	id, _ := cell.GetReference().(string)
	return id
}

// RequestDelete opens the confirmation dialog for the shown list
func (d *ListDetailDialog) RequestDelete() {
	list, ok := d.List()
	if !ok {
		return
	}

	id := list.ID
	d.confirm.Open(list.Name, func() { d.collection.Delete(id) }, nil)
}

// Primitive returns the tview primitive
func (d *ListDetailDialog) Primitive() tview.Primitive {
	return d.layout
}

func (d *ListDetailDialog) render() {
	list, ok := d.collection.Get(d.listID)
	if !ok {
		return
	}

	d.header.SetText(fmt.Sprintf("%s%s[-::-]  %s\n%s",
		BoldTag(d.styles.AccentColor),
		tview.Escape(list.Name),
		Colorize(d.styles.MutedColor, list.Category.Label()),
		Colorize(d.styles.MutedColor, list.Summary())))
	d.items.SetTitle(fmt.Sprintf(" Items (%d) ", list.ItemCount()))

	row, _ := d.items.GetSelection()
	d.items.Clear()

	if len(list.Items) == 0 {
		d.items.SetCell(0, 0, tview.NewTableCell(emptyItemsText).
			SetTextColor(d.styles.MutedColor).
			SetSelectable(false).
			SetExpansion(1))
		return
	}

	for i, item := range list.Items {
		mark, color, attrs := markUnchecked, d.styles.FgColor, tcell.AttrNone
		if item.Checked {
			mark, color, attrs = markChecked, d.styles.MutedColor, tcell.AttrStrikeThrough
		}

		d.items.SetCell(i, 0, tview.NewTableCell(mark).
			SetTextColor(d.styles.OKColor).
			SetReference(item.ID))
		d.items.SetCell(i, 1, tview.NewTableCell(tview.Escape(item.Name)).
			SetTextColor(color).
			SetAttributes(attrs).
			SetExpansion(1))
		d.items.SetCell(i, 2, tview.NewTableCell(fmt.Sprintf("×%d", item.Quantity)).
			SetTextColor(d.styles.MutedColor).
			SetAlign(tview.AlignRight))
	}

	if row >= len(list.Items) {
		row = len(list.Items) - 1
	}
	if row < 0 {
		row = 0
	}
	d.items.Select(row, 0)
}
