package order

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"foodbot/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart was not created via NewCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrLinesMismatch is returned when item names and quantities differ in length.
	ErrLinesMismatch = errors.New("food items and quantities differ in length")
)

// Line is one item of a Cart.
type Line struct {
	Name     string
	Quantity int
}

func (l Line) String() string {
	return fmt.Sprintf("%s: %d", l.Name, l.Quantity)
}

// Cart is the in-progress order of one conversation. It maps item names to
// quantities and remembers the order in which items were first added, which
// is the order String and Lines report them in.
//
// A Cart is not safe for concurrent use; stores hand out copies.
type Cart struct {
	lines []Line
	index map[string]int

	isConstructed bool
}

// NewCart builds a Cart from parallel sequences of names and quantities.
//
// When a name occurs more than once, the last quantity wins and the item keeps
// the position of its first occurrence.
//
// Returns ErrLinesMismatch (wrapped in a ValueIsInvalid error) when the
// sequences differ in length, and a ValueIsRequired error for a blank name.
//
// Example:
//
//	cart, err := order.NewCart([]string{"Samosa", "Mango Lassi"}, []int{2, 1})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cart) // Samosa: 2, Mango Lassi: 1
func NewCart(names []string, quantities []int) (*Cart, error) {
	if len(names) != len(quantities) {
		return nil, errs.NewValueIsInvalidErrorWithCause("food-items", ErrLinesMismatch)
	}

	cart := &Cart{
		lines:         make([]Line, 0, len(names)),
		index:         make(map[string]int, len(names)),
		isConstructed: true,
	}
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, errs.NewValueIsRequiredError("food item name")
		}
		cart.set(name, quantities[i])
	}

	return cart, nil
}

// Validate ensures the Cart was created through NewCart.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// Merge copies every line of other into c. Quantities of items present in
// both are overwritten by other; items only in c are kept.
func (c *Cart) Merge(other *Cart) {
	if other == nil {
		return
	}
	for _, l := range other.lines {
		c.set(l.Name, l.Quantity)
	}
}

// Remove deletes the named items. It returns the names that were removed and
// the names that were not in the Cart, both in request order.
func (c *Cart) Remove(names []string) (removed []string, notFound []string) {
	for _, name := range names {
		if _, ok := c.index[name]; !ok {
			notFound = append(notFound, name)
			continue
		}
		c.delete(name)
		removed = append(removed, name)
	}
	return removed, notFound
}

// Quantity returns the quantity of the named item.
func (c *Cart) Quantity(name string) (int, bool) {
	i, ok := c.index[name]
	if !ok {
		return 0, false
	}
	return c.lines[i].Quantity, true
}

// Lines returns a copy of the Cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct items.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the Cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clone returns an independent copy of the Cart.
func (c *Cart) Clone() *Cart {
	return &Cart{
		lines:         c.Lines(),
		index:         maps.Clone(c.index),
		isConstructed: c.isConstructed,
	}
}

// String renders the Cart as "name: quantity" pairs joined by ", ".
func (c *Cart) String() string {
	parts := make([]string, 0, len(c.lines))
	for _, l := range c.lines {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, ", ")
}

func (c *Cart) set(name string, quantity int) {
	if i, ok := c.index[name]; ok {
		c.lines[i].Quantity = quantity
		return
	}
	c.index[name] = len(c.lines)
	c.lines = append(c.lines, Line{Name: name, Quantity: quantity})
}

func (c *Cart) delete(name string) {
	i := c.index[name]
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, name)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].Name] = j
	}
}
