package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kedare/basket/internal/logger"
	"github.com/kedare/basket/internal/shopping"
	"github.com/rivo/tview"
)

const (
	addDialogWidth  = 54
	addDialogHeight = 11
	buttonCreate    = "Create"
)

// AddListDialog collects a name and category and creates a list
type AddListDialog struct {
	host       *DialogHost
	collection *shopping.Collection
	form       *tview.Form
	nameInput  *tview.InputField
	category   *tview.DropDown
	layout     tview.Primitive
	open       bool

	name     string
	selected shopping.Category

	onCreated func(shopping.ShoppingList)
}

// NewAddListDialog builds the dialog. onCreated runs after a successful submit.
func NewAddListDialog(host *DialogHost, collection *shopping.Collection, styles *Styles, onCreated func(shopping.ShoppingList)) *AddListDialog {
	d := &AddListDialog{
		host:       host,
		collection: collection,
		selected:   shopping.CategoryGroceries,
		onCreated:  onCreated,
	}

	d.nameInput = tview.NewInputField().
		SetLabel("Name ").
		SetPlaceholder("e.g. Weekly groceries").
		SetFieldWidth(0)
	d.nameInput.SetChangedFunc(func(text string) {
		d.name = text
		d.updateSubmit()
	})
	d.nameInput.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			d.Submit()
		}
	})

	categories := shopping.Categories()
	labels := make([]string, len(categories))
	for i, c := range categories {
		labels[i] = c.Label()
	}
	d.category = tview.NewDropDown().
		SetLabel("Category ").
		SetOptions(labels, func(_ string, index int) {
			if index >= 0 && index < len(categories) {
				d.selected = categories[index]
			}
		})
	d.category.SetCurrentOption(0)

	d.form = tview.NewForm().
		AddFormItem(d.nameInput).
		AddFormItem(d.category).
		AddButton(buttonCreate, func() { d.Submit() }).
		AddButton(buttonCancel, func() { d.Close() })
	d.form.SetCancelFunc(d.Close)
	d.form.SetBorder(true).SetTitle(" New List ")

	d.layout = centered(d.form, addDialogWidth, addDialogHeight)
	d.ApplyStyles(styles)
	d.updateSubmit()

	return d
}

// ApplyStyles re-colors the form
func (d *AddListDialog) ApplyStyles(styles *Styles) {
	styles.ApplyForm(d.form)
	styles.ApplyInput(d.nameInput)
}

// Open shows the dialog with focus on the name field
func (d *AddListDialog) Open() {
	if d.open {
		return
	}
	d.open = true
	d.form.SetFocus(0)
	d.host.Show(d.layout, d.form)
}

// Close hides the dialog. The typed name is kept until a submit succeeds.
func (d *AddListDialog) Close() {
	if !d.open {
		return
	}
	d.open = false
	d.host.Close()
}

// IsOpen reports whether the dialog is on screen
func (d *AddListDialog) IsOpen() bool {
	return d.open
}

// SetName replaces the name field text
func (d *AddListDialog) SetName(name string) {
	d.name = name
	d.nameInput.SetText(name)
	d.updateSubmit()
}

// Name returns the name field text as typed
func (d *AddListDialog) Name() string {
	return d.name
}

// SetCategory selects a category; invalid values are ignored
func (d *AddListDialog) SetCategory(c shopping.Category) {
	for i, candidate := range shopping.Categories() {
		if candidate == c {
			d.category.SetCurrentOption(i)
			d.selected = c
			return
		}
	}
}

// Category returns the selected category
func (d *AddListDialog) Category() shopping.Category {
	return d.selected
}

// CanSubmit reports whether the trimmed name is non-empty
func (d *AddListDialog) CanSubmit() bool {
	return strings.TrimSpace(d.name) != ""
}

// Submit creates the list, clears the name and closes the dialog.
// It does nothing while CanSubmit is false.
func (d *AddListDialog) Submit() (shopping.ShoppingList, bool) {
	if !d.CanSubmit() {
		return shopping.ShoppingList{}, false
	}

	list := d.collection.Create(d.name, d.selected)
	logger.Log.Debugf("Created list %s (%s)", list.ID, list.Category)

	d.SetName("")
	d.Close()

	if d.onCreated != nil {
		d.onCreated(list)
	}

	return list, true
}

// Primitive returns the tview primitive
func (d *AddListDialog) Primitive() tview.Primitive {
	return d.layout
}

func (d *AddListDialog) updateSubmit() {
	if idx := d.form.GetButtonIndex(buttonCreate); idx >= 0 {
		d.form.GetButton(idx).SetDisabled(!d.CanSubmit())
	}
}
