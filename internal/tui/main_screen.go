package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kedare/basket/internal/logger"
	"github.com/kedare/basket/internal/shopping"
	"github.com/kedare/basket/internal/theme"
	"github.com/rivo/tview"
)

const (
	screenTitle     = "My Lists"
	emptyListsText  = "No lists found"
	emptyListsHint  = "Press a to create your first list"
	emptyFilterHint = "Try another search or category (0 clears the category)"

	nameColumnWidth     = 32
	categoryColumnWidth = 12
)

// Status bar message constants
const (
	statusDefault     = " [yellow]a[-] add  [yellow]Enter[-] open  [yellow]d[-] delete  [yellow]/[-] search  [yellow]1-4[-] category  [yellow]t[-] theme  [yellow]?[-] help  [yellow]q[-] quit"
	statusSearchMode  = " [yellow]Type to filter, Enter or Esc to return to the lists[-]"
	statusNoSelection = " [red]No list selected[-]"
	statusCreated     = " [green]Created %s[-]"
	statusDeleted     = " [green]Deleted %s[-]"
	statusTheme       = " [green]Theme: %s[-]"
)

// greeting returns the time-of-day salutation shown in the header
func greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// ScreenOption configures a MainScreen
type ScreenOption func(*MainScreen)

// WithClock replaces the time source used for the greeting
func WithClock(now func() time.Time) ScreenOption {
	return func(m *MainScreen) {
		m.now = now
	}
}

// WithDispatch sets how work from background goroutines reaches the UI
// goroutine. The running app uses QueueUpdateDraw.
func WithDispatch(dispatch func(func())) ScreenOption {
	return func(m *MainScreen) {
		m.dispatch = dispatch
	}
}

// WithQuit sets what the quit key does
func WithQuit(quit func()) ScreenOption {
	return func(m *MainScreen) {
		m.quit = quit
	}
}

// MainScreen is the list overview: header, search, category chips,
// the list table and the dialogs opened from it.
type MainScreen struct {
	app        *tview.Application
	collection *shopping.Collection
	preference *theme.Preference
	styles     *Styles
	keys       *KeyBindings
	host       *DialogHost

	addDialog    *AddListDialog
	detailDialog *ListDetailDialog
	confirm      *DeleteConfirmDialog
	help         *HelpView

	header *tview.TextView
	search *tview.InputField
	chips  *tview.TextView
	table  *tview.Table
	status *tview.TextView
	layout *tview.Flex

	searchText string
	category   shopping.Category
	selectedID string
	visible    []shopping.ShoppingList
	message    string

	ctx      context.Context
	now      func() time.Time
	dispatch func(func())
	quit     func()
}

// NewMainScreen builds the screen and its dialogs
func NewMainScreen(app *tview.Application, collection *shopping.Collection, preference *theme.Preference, opts ...ScreenOption) *MainScreen {
	m := &MainScreen{
		app:        app,
		collection: collection,
		preference: preference,
		styles:     StylesFor(preference.Mode()),
		keys:       NewKeyBindings(),
		category:   shopping.AnyCategory,
		ctx:        context.Background(),
		now:        time.Now,
		dispatch:   func(fn func()) { fn() },
		quit:       app.Stop,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.buildUI()

	m.host = NewDialogHost(app, m.layout)
	m.host.SetOnClose(func() {
		if m.host.Depth() == 0 {
			m.keys.SetMode(ModeNormal)
			m.Refresh()
		}
	})

	m.confirm = NewDeleteConfirmDialog(m.host, m.styles)
	m.addDialog = NewAddListDialog(m.host, collection, m.styles, func(list shopping.ShoppingList) {
		m.selectedID = list.ID
		m.Refresh()
		m.flash(fmt.Sprintf(statusCreated, tview.Escape(list.Name)))
	})
	m.detailDialog = NewListDetailDialog(m.host, collection, m.confirm, m.styles)
	m.help = NewHelpView(m.host, m.styles)

	collection.Subscribe(shopping.ObserverFuncs{
		OnUpdated: func(shopping.ShoppingList) { m.Refresh() },
		OnDeleted: func(id string) {
			if m.selectedID == id {
				m.selectedID = ""
			}
			m.Refresh()
		},
	})

	m.setupKeys()
	m.ApplyTheme(m.styles.Mode)

	return m
}

func (m *MainScreen) buildUI() {
	m.header = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)

	m.search = tview.NewInputField().
		SetLabel(" / ").
		SetPlaceholder("Search lists")
	m.search.SetChangedFunc(func(text string) {
		if text == m.searchText {
			return
		}
		m.searchText = text
		m.Refresh()
	})
	m.search.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter, tcell.KeyEscape, tcell.KeyTab, tcell.KeyDown:
			m.focusTable()
		}
	})

	m.chips = tview.NewTextView().
		SetDynamicColors(true)

	m.table = tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	m.table.SetBorder(true)
	m.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		m.message = ""
		if m.HandleKey(event) {
			return nil
		}
		m.renderStatus()
		return event
	})
	m.table.SetSelectionChangedFunc(func(row, _ int) {
		if id := m.rowID(row); id != "" {
			m.selectedID = id
		}
	})

	m.status = tview.NewTextView().
		SetDynamicColors(true)

	m.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(m.header, 2, 0, false).
		AddItem(m.search, 1, 0, false).
		AddItem(m.chips, 1, 0, false).
		AddItem(m.table, 0, 1, true).
		AddItem(m.status, 1, 0, false)
}

func (m *MainScreen) setupKeys() {
	normal := []ViewMode{ModeNormal}

	m.keys.RegisterKey('a', "Add a list", normal, func() bool {
		m.OpenAddDialog()
		return true
	})
	m.keys.RegisterSpecial(tcell.KeyEnter, "Open the selected list", normal, func() bool {
		m.OpenSelected()
		return true
	})
	m.keys.RegisterKey('d', "Delete the selected list", normal, func() bool {
		m.DeleteSelected()
		return true
	})
	m.keys.RegisterKey('t', "Toggle dark/light theme", normal, func() bool {
		m.ToggleTheme()
		return true
	})
	for i, c := range shopping.Categories() {
		m.keys.RegisterKey(rune('1'+i), "Filter by "+c.Label(), normal, func() bool {
			m.SelectCategory(c)
			return true
		})
	}
	m.keys.RegisterKey('0', "Show every category", normal, func() bool {
		m.SelectCategory(shopping.AnyCategory)
		return true
	})
	m.keys.RegisterKey('/', "Search lists", normal, func() bool {
		m.focusSearch()
		return true
	})
	m.keys.RegisterKey('?', "Show this help", normal, func() bool {
		m.ShowHelp()
		return true
	})
	m.keys.RegisterKey('q', "Quit", normal, func() bool {
		m.quit()
		return true
	})
}

// Start loads the theme preference in the background. The screen renders
// with the host scheme until the stored value arrives.
func (m *MainScreen) Start(ctx context.Context) {
	m.ctx = ctx
	m.preference.LoadAsync(ctx, func(mode theme.Mode) {
		m.dispatch(func() { m.ApplyTheme(mode) })
	})
}

// Primitive returns the tview primitive
func (m *MainScreen) Primitive() tview.Primitive {
	return m.layout
}

// Focus returns the widget that should have focus on the base screen
func (m *MainScreen) Focus() tview.Primitive {
	return m.table
}

// HandleKey runs a key through the main screen bindings
func (m *MainScreen) HandleKey(event *tcell.EventKey) bool {
	return m.keys.Handle(event)
}

// SetSearch replaces the search text
func (m *MainScreen) SetSearch(text string) {
	m.searchText = text
	m.search.SetText(text)
	m.Refresh()
}

// SearchText returns the current search text
func (m *MainScreen) SearchText() string {
	return m.searchText
}

// SelectCategory filters by c. Selecting the active category again, or
// AnyCategory, clears the filter.
func (m *MainScreen) SelectCategory(c shopping.Category) {
	if c == m.category {
		c = shopping.AnyCategory
	}
	m.category = c
	m.Refresh()
}

// Category returns the active category filter, or AnyCategory
func (m *MainScreen) Category() shopping.Category {
	return m.category
}

// VisibleLists returns the lists shown in the table, in display order
func (m *MainScreen) VisibleLists() []shopping.ShoppingList {
	return m.visible
}

// SelectedID returns the id of the highlighted list
func (m *MainScreen) SelectedID() string {
	return m.selectedID
}

// Select highlights the list with the given id if it is visible
func (m *MainScreen) Select(id string) bool {
	for i, list := range m.visible {
		if list.ID == id {
			m.selectedID = id
			m.table.Select(i+1, 0)
			return true
		}
	}
	return false
}

// Styles returns the active palette
func (m *MainScreen) Styles() *Styles {
	return m.styles
}

// OpenAddDialog shows the add list dialog
func (m *MainScreen) OpenAddDialog() {
	m.keys.SetMode(ModeDialog)
	m.addDialog.Open()
}

// AddDialog returns the add list dialog
func (m *MainScreen) AddDialog() *AddListDialog {
	return m.addDialog
}

// DetailDialog returns the list detail dialog
func (m *MainScreen) DetailDialog() *ListDetailDialog {
	return m.detailDialog
}

// ConfirmDialog returns the delete confirmation dialog
func (m *MainScreen) ConfirmDialog() *DeleteConfirmDialog {
	return m.confirm
}

// HelpView returns the help view
func (m *MainScreen) HelpView() *HelpView {
	return m.help
}

// OpenSelected opens the detail dialog for the highlighted list
func (m *MainScreen) OpenSelected() bool {
	if m.selectedID == "" {
		m.flash(statusNoSelection)
		return false
	}
	m.keys.SetMode(ModeDialog)
	if !m.detailDialog.Open(m.selectedID) {
		m.keys.SetMode(ModeNormal)
		return false
	}
	return true
}

// DeleteSelected asks for confirmation and deletes the highlighted list
func (m *MainScreen) DeleteSelected() bool {
	list, ok := m.collection.Get(m.selectedID)
	if !ok {
		m.flash(statusNoSelection)
		return false
	}

	m.keys.SetMode(ModeDialog)
	m.confirm.Open(list.Name, func() {
		if m.collection.Delete(list.ID) {
			m.flash(fmt.Sprintf(statusDeleted, tview.Escape(list.Name)))
		}
	}, nil)
	return true
}

// ToggleTheme flips the theme now and saves it in the background
func (m *MainScreen) ToggleTheme() theme.Mode {
	mode := m.preference.ToggleAsync(m.ctx)
	m.ApplyTheme(mode)
	m.flash(fmt.Sprintf(statusTheme, mode))
	return mode
}

// ShowHelp opens the keyboard shortcut reference
func (m *MainScreen) ShowHelp() {
	m.keys.SetMode(ModeDialog)
	m.help.Open(
		HelpSection{Title: "Lists", Entries: m.keys.GetHelpText()},
		HelpSection{Title: "List Details", Entries: m.detailDialog.keys.GetHelpText()},
		HelpSection{Title: "Global", Entries: []HelpEntry{{Key: "Ctrl+C", Description: "Quit"}, {Key: "Esc", Description: "Close dialog / leave search"}}},
	)
}

// ApplyTheme switches the palette for every widget and dialog
func (m *MainScreen) ApplyTheme(mode theme.Mode) {
	m.styles = StylesFor(mode)
	logger.Log.Debugf("Applying %s theme", mode)

	m.layout.SetBackgroundColor(m.styles.BgColor)
	m.styles.ApplyText(m.header)
	m.styles.ApplyText(m.chips)
	m.styles.ApplyText(m.status)
	m.styles.ApplyInput(m.search)
	m.styles.ApplyTable(m.table)

	m.confirm.ApplyStyles(m.styles)
	m.addDialog.ApplyStyles(m.styles)
	m.detailDialog.ApplyStyles(m.styles)
	m.help.ApplyStyles(m.styles)

	m.Refresh()
}

// Refresh re-renders the screen from the collection
func (m *MainScreen) Refresh() {
	m.visible = m.collection.Filter(m.searchText, m.category)

	m.renderHeader()
	m.renderChips()
	m.renderTable()
	m.renderStatus()
}

func (m *MainScreen) renderHeader() {
	m.header.SetText(fmt.Sprintf(" %s\n %s%s[-::-]  %s",
		Colorize(m.styles.MutedColor, greeting(m.now())),
		BoldTag(m.styles.AccentColor), screenTitle,
		Colorize(m.styles.MutedColor, fmt.Sprintf("%d of %d lists", len(m.visible), m.collection.Len()))))
}

func (m *MainScreen) renderChips() {
	parts := make([]string, 0, len(shopping.Categories()))
	for i, c := range shopping.Categories() {
		if c == m.category {
			parts = append(parts, fmt.Sprintf("%s● %d %s[-::-]", BoldTag(m.styles.AccentColor), i+1, c.Label()))
			continue
		}
		parts = append(parts, Colorize(m.styles.MutedColor, fmt.Sprintf("○ %d %s", i+1, c.Label())))
	}
	m.chips.SetText(" " + strings.Join(parts, "  "))
}

func (m *MainScreen) renderTable() {
	m.table.Clear()

	headers := []string{"NAME", "CATEGORY", "SUMMARY"}
	for col, header := range headers {
		m.table.SetCell(0, col, tview.NewTableCell(header).
			SetTextColor(m.styles.TableHeaderFg).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}
	m.table.SetTitle(fmt.Sprintf(" %s (%d) ", screenTitle, len(m.visible)))

	if len(m.visible) == 0 {
		m.selectedID = ""
		hint := emptyListsHint
		if m.searchText != "" || m.category != shopping.AnyCategory {
			hint = emptyFilterHint
		}
		m.table.SetCell(1, 0, tview.NewTableCell(emptyListsText).
			SetTextColor(m.styles.FgColor).
			SetSelectable(false))
		m.table.SetCell(2, 0, tview.NewTableCell(hint).
			SetTextColor(m.styles.MutedColor).
			SetSelectable(false))
		return
	}

	selectedRow := 1
	for i, list := range m.visible {
		row := i + 1
		name := highlightMatch(truncate(list.Name, nameColumnWidth), m.searchText, BoldTag(m.styles.AccentColor))

		m.table.SetCell(row, 0, tview.NewTableCell(name).
			SetTextColor(m.styles.FgColor).
			SetReference(list.ID))
		m.table.SetCell(row, 1, tview.NewTableCell(truncate(list.Category.Label(), categoryColumnWidth)).
			SetTextColor(m.styles.MutedColor))
		m.table.SetCell(row, 2, tview.NewTableCell(list.Summary()).
			SetTextColor(m.styles.MutedColor).
			SetExpansion(1))

		if list.ID == m.selectedID {
			selectedRow = row
		}
	}

	m.selectedID = m.rowID(selectedRow)
	m.table.Select(selectedRow, 0)
}

func (m *MainScreen) renderStatus() {
	text := statusDefault
	if m.keys.GetMode() == ModeSearch {
		text = statusSearchMode
	}
	if m.message != "" {
		text = m.message + " " + text
	}
	m.status.SetText(text)
}

// flash shows a one-off message until the next key press on the table
func (m *MainScreen) flash(message string) {
	m.message = message
	m.renderStatus()
}

// Message returns the status message currently shown, if any
func (m *MainScreen) Message() string {
	return m.message
}

func (m *MainScreen) rowID(row int) string {
	cell := m.table.GetCell(row, 0)
	if cell == nil {
		return ""
	}
	id, _ := cell.GetReference().(string)
	return id
}

func (m *MainScreen) focusSearch() {
	m.keys.SetMode(ModeSearch)
	m.message = ""
	m.renderStatus()
	m.app.SetFocus(m.search)
}

func (m *MainScreen) focusTable() {
	m.keys.SetMode(ModeNormal)
	m.renderStatus()
	m.app.SetFocus(m.table)
}
