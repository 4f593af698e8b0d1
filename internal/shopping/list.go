package shopping

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ListItem is one row inside a ShoppingList.
type ListItem struct {
	ID       string `validate:"required"`
	Name     string `validate:"name"`
	Quantity int    `validate:"min=1"`
	Checked  bool
}

// ShoppingList is a named, categorized, ordered collection of items.
//
// Items keep insertion order, which is also display order. The item count
// is not stored; ItemCount derives it from Items so the two cannot drift.
type ShoppingList struct {
	ID        string     `validate:"required"`
	Name      string     `validate:"name"`
	Category  Category   `validate:"category"`
	CreatedAt time.Time  `validate:"required"`
	Items     []ListItem `validate:"dive"`
}

// ItemCount returns the number of items in the list.
func (l ShoppingList) ItemCount() int {
	return len(l.Items)
}

// CheckedCount returns how many items are checked.
func (l ShoppingList) CheckedCount() int {
	n := 0
	for _, item := range l.Items {
		if item.Checked {
			n++
		}
	}

	return n
}

// Summary renders the one-line description shown under a list name,
// e.g. "2 items • created on 2025-03-10 • 1 of 2 checked".
func (l ShoppingList) Summary() string {
	count := l.ItemCount()

	noun := "items"
	if count == 1 {
		noun = "item"
	}

	summary := fmt.Sprintf("%d %s • created on %s", count, noun, l.CreatedAt.Format(time.DateOnly))
	if checked := l.CheckedCount(); checked > 0 {
		summary += fmt.Sprintf(" • %d of %d checked", checked, count)
	}

	return summary
}

// Item returns the item with the given id.
func (l ShoppingList) Item(id string) (ListItem, bool) {
	for _, item := range l.Items {
		if item.ID == id {
			return item, true
		}
	}

	return ListItem{}, false
}

// clone returns a deep copy so callers never share the Items backing array.
func (l ShoppingList) clone() ShoppingList {
	c := l
	c.Items = make([]ListItem, len(l.Items))
	copy(c.Items, l.Items)

	return c
}

// NormalizeName trims surrounding whitespace from a list or item name.
func NormalizeName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrNameRequired
	}

	return s, nil
}

// DefaultQuantity is used when the quantity text is missing or unusable.
const DefaultQuantity = 1

// ParseQuantity reads the leading base-10 integer of text, so "12 pcs"
// gives 12 and "3.5" gives 3. Missing, overflowing or non-positive values
// yield DefaultQuantity.
func ParseQuantity(text string) int {
	text = strings.TrimSpace(text)

	end := 0
	if end < len(text) && (text[end] == '+' || text[end] == '-') {
		end++
	}
	digits := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digits {
		return DefaultQuantity
	}

	n, err := strconv.Atoi(text[:end])
	if err != nil || n < 1 {
		return DefaultQuantity
	}

	return n
}
