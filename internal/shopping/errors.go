package shopping

import "errors"

var (
	// ErrNameRequired indicates a list or item name that is empty after trimming.
	ErrNameRequired = errors.New("name is required")

	// ErrInvalidCategory indicates a category outside the fixed set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidList indicates a ShoppingList value that breaks a structural rule.
	ErrInvalidList = errors.New("invalid shopping list")
)
