package shopping

import (
	"fmt"
	"strings"
)

// Category classifies a list. The set is fixed.
type Category string

const (
	CategoryGroceries Category = "groceries"
	CategoryHousehold Category = "household"
	CategoryPersonal  Category = "personal"
	CategoryOther     Category = "other"

	// AnyCategory disables category filtering in Filter.
	AnyCategory Category = ""
)

var categoryLabels = map[Category]string{
	CategoryGroceries: "Groceries",
	CategoryHousehold: "Household",
	CategoryPersonal:  "Personal",
	CategoryOther:     "Other",
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryGroceries,
		CategoryHousehold,
		CategoryPersonal,
		CategoryOther,
	}
}

// ParseCategory validates s case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidCategory, s)
	}

	return c, nil
}

// Valid reports whether c is one of the four categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display name, or the raw value for unknown categories.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}

	return string(c)
}

func (c Category) String() string {
	return string(c)
}
