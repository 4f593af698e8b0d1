package shopping

import (
	"strings"
	"time"

	"github.com/kedare/basket/internal/logger"
)

// Observer is notified after a stored list changes. A component that holds
// a selected list uses it to refresh or clear that selection.
type Observer interface {
	ListUpdated(list ShoppingList)
	ListDeleted(id string)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnUpdated func(list ShoppingList)
	OnDeleted func(id string)
}

func (o ObserverFuncs) ListUpdated(list ShoppingList) {
	if o.OnUpdated != nil {
		o.OnUpdated(list)
	}
}

func (o ObserverFuncs) ListDeleted(id string) {
	if o.OnDeleted != nil {
		o.OnDeleted(id)
	}
}

// Option configures a Collection.
type Option func(*Collection)

// WithIDSource replaces the identifier generator.
func WithIDSource(next func() string) Option {
	return func(c *Collection) {
		c.newID = next
	}
}

// WithClock replaces the creation-time source.
func WithClock(now func() time.Time) Option {
	return func(c *Collection) {
		c.now = now
	}
}

// Collection is the single owner of every ShoppingList in the process.
//
// Lists are kept in insertion order. Values going in and out are copied, so
// nothing outside the collection can change stored state by reference.
// A Collection is not safe for concurrent use; it belongs to the UI goroutine.
type Collection struct {
	lists     []ShoppingList
	issued    map[string]struct{}
	newID     func() string
	now       func() time.Time
	observers map[int]Observer
	nextObs   int
}

// NewCollection returns an empty collection.
func NewCollection(opts ...Option) *Collection {
	c := &Collection{
		issued:    make(map[string]struct{}),
		newID:     NewID,
		now:       time.Now,
		observers: make(map[int]Observer),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Subscribe registers o and returns a function that unregisters it.
func (c *Collection) Subscribe(o Observer) func() {
	id := c.nextObs
	c.nextObs++
	c.observers[id] = o

	return func() {
		delete(c.observers, id)
	}
}

// Create appends a new empty list. The caller has already rejected blank
// names; surrounding whitespace is trimmed here. A category outside the
// fixed set is stored as CategoryOther.
func (c *Collection) Create(name string, category Category) ShoppingList {
	if !category.Valid() {
		logger.Log.Debugf("Unknown category %q for new list, using %s", category, CategoryOther)
		category = CategoryOther
	}

	list := ShoppingList{
		ID:        c.uniqueID(),
		Name:      strings.TrimSpace(name),
		Category:  category,
		CreatedAt: c.now(),
		Items:     []ListItem{},
	}

	c.lists = append(c.lists, list)
	logger.Log.Debugf("Created list %s (%s, %s)", list.ID, list.Name, list.Category)

	return list.clone()
}

// uniqueID never hands out an id twice, even one whose list was deleted.
func (c *Collection) uniqueID() string {
	for {
		id := c.newID()
		if _, used := c.issued[id]; !used {
			c.issued[id] = struct{}{}
			return id
		}
	}
}

// Update replaces the stored list that has list.ID, keeping its position
// and its creation time. List and item names are trimmed first. It reports
// false, storing nothing, when the id is unknown or the value is
// structurally invalid.
func (c *Collection) Update(list ShoppingList) bool {
	i := c.indexOf(list.ID)
	if i < 0 {
		logger.Log.Debugf("Update ignored, list %s not found", list.ID)
		return false
	}

	stored := list.clone()
	stored.CreatedAt = c.lists[i].CreatedAt
	stored.Name = strings.TrimSpace(stored.Name)
	for j := range stored.Items {
		stored.Items[j].Name = strings.TrimSpace(stored.Items[j].Name)
	}

	if err := stored.Validate(); err != nil {
		logger.Log.Debugf("Update ignored for list %s: %v", list.ID, err)
		return false
	}

	c.lists[i] = stored

	for _, o := range c.observers {
		o.ListUpdated(stored.clone())
	}

	return true
}

// Delete removes a list and its items. It reports false when the id is unknown.
func (c *Collection) Delete(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}

	c.lists = append(c.lists[:i:i], c.lists[i+1:]...)
	logger.Log.Debugf("Deleted list %s", id)

	for _, o := range c.observers {
		o.ListDeleted(id)
	}

	return true
}

// Filter returns the lists whose name contains searchText case-insensitively
// and whose category equals category. An empty searchText or AnyCategory
// disables that half of the match. Insertion order is preserved.
func (c *Collection) Filter(searchText string, category Category) []ShoppingList {
	needle := strings.ToLower(searchText)
	results := make([]ShoppingList, 0, len(c.lists))

	for _, list := range c.lists {
		if category != AnyCategory && list.Category != category {
			continue
		}

		if needle != "" && !strings.Contains(strings.ToLower(list.Name), needle) {
			continue
		}

		results = append(results, list.clone())
	}

	return results
}

// Get returns a copy of the list with the given id.
func (c *Collection) Get(id string) (ShoppingList, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return ShoppingList{}, false
	}

	return c.lists[i].clone(), true
}

// Lists returns every list in insertion order.
func (c *Collection) Lists() []ShoppingList {
	return c.Filter("", AnyCategory)
}

// Len returns the number of stored lists.
func (c *Collection) Len() int {
	return len(c.lists)
}

func (c *Collection) indexOf(id string) int {
	for i, list := range c.lists {
		if list.ID == id {
			return i
		}
	}

	return -1
}
