package shopping

// Command is a change request against one stored list. Dialogs send
// commands instead of pushing back a working copy, so a stale view can
// never overwrite newer state.
type Command interface {
	// Apply computes the new value of the target list from its current
	// stored value. It reports false when there is nothing to change.
	Apply(c *Collection, current ShoppingList) (ShoppingList, bool)
	// Target is the id of the list the command operates on.
	Target() string
}

// AddItemCommand appends an item. Quantity is the raw user text.
type AddItemCommand struct {
	ListID   string
	Name     string
	Quantity string
}

func (cmd AddItemCommand) Target() string { return cmd.ListID }

func (cmd AddItemCommand) Apply(c *Collection, current ShoppingList) (ShoppingList, bool) {
	if _, err := NormalizeName(cmd.Name); err != nil {
		return current, false
	}

	return addItem(current, cmd.Name, cmd.Quantity, c.uniqueID())
}

// ToggleItemCommand flips the checked flag of one item.
type ToggleItemCommand struct {
	ListID string
	ItemID string
}

func (cmd ToggleItemCommand) Target() string { return cmd.ListID }

func (cmd ToggleItemCommand) Apply(_ *Collection, current ShoppingList) (ShoppingList, bool) {
	return ToggleChecked(current, cmd.ItemID)
}

// RemoveItemCommand deletes one item.
type RemoveItemCommand struct {
	ListID string
	ItemID string
}

func (cmd RemoveItemCommand) Target() string { return cmd.ListID }

func (cmd RemoveItemCommand) Apply(_ *Collection, current ShoppingList) (ShoppingList, bool) {
	return RemoveItem(current, cmd.ItemID)
}

// Execute applies cmd to the current stored value of its target list and
// commits the result in the same step. It returns the committed list, or
// false when the list or item is gone or the command changed nothing.
func (c *Collection) Execute(cmd Command) (ShoppingList, bool) {
	current, ok := c.Get(cmd.Target())
	if !ok {
		return ShoppingList{}, false
	}

	updated, changed := cmd.Apply(c, current)
	if !changed {
		return current, false
	}

	if !c.Update(updated) {
		return current, false
	}

	return c.Get(cmd.Target())
}
