package shopping

// The item operations below never modify their input. They return a new
// ShoppingList that must be committed with Collection.Update, or applied
// through a Command, to take effect.

// AddItem appends a new unchecked item. It reports false, and returns the
// list unchanged, when name is blank.
func AddItem(list ShoppingList, name, quantityText string) (ShoppingList, bool) {
	return addItem(list, name, quantityText, NewID())
}

func addItem(list ShoppingList, name, quantityText, id string) (ShoppingList, bool) {
	name, err := NormalizeName(name)
	if err != nil {
		return list, false
	}

	updated := list.clone()
	updated.Items = append(updated.Items, ListItem{
		ID:       id,
		Name:     name,
		Quantity: ParseQuantity(quantityText),
	})

	return updated, true
}

// ToggleChecked flips the checked flag of one item. It reports false when
// no item has that id.
func ToggleChecked(list ShoppingList, itemID string) (ShoppingList, bool) {
	for i, item := range list.Items {
		if item.ID != itemID {
			continue
		}

		updated := list.clone()
		updated.Items[i].Checked = !item.Checked

		return updated, true
	}

	return list, false
}

// RemoveItem drops one item, keeping the order of the rest. It reports
// false when no item has that id.
func RemoveItem(list ShoppingList, itemID string) (ShoppingList, bool) {
	for i, item := range list.Items {
		if item.ID != itemID {
			continue
		}

		updated := list
		updated.Items = make([]ListItem, 0, len(list.Items)-1)
		updated.Items = append(updated.Items, list.Items[:i]...)
		updated.Items = append(updated.Items, list.Items[i+1:]...)

		return updated, true
	}

	return list, false
}
