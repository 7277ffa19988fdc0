package inventory

import "sort"

// Container tracks held quantities per item type without any limit.
//
// Invariant: no entry with a zero quantity is stored.
type Container struct {
	qty map[string]int
}

// NewContainer returns an empty Container.
func NewContainer() *Container {
	return &Container{qty: make(map[string]int)}
}

// Add adjusts the held quantity of itemType by qty. Any integer is accepted,
// including zero and negative values. An empty itemType is ignored.
//
// Postcondition: Quantity(itemType) increases by qty.
func (c *Container) Add(itemType string, qty int) {
	if itemType == "" {
		return
	}
	n := c.qty[itemType] + qty
	if n == 0 {
		delete(c.qty, itemType)
		return
	}
	c.qty[itemType] = n
}

// Remove takes up to qty units of itemType out of the container. Removing at
// least the held quantity clears the entry.
//
// Postcondition: Quantity(itemType) == max(0, before-qty) for a positive holding.
func (c *Container) Remove(itemType string, qty int) {
	n, ok := c.qty[itemType]
	if !ok {
		return
	}
	if qty < n {
		c.qty[itemType] = n - qty
		return
	}
	delete(c.qty, itemType)
}

// Quantity returns the held quantity of itemType, or 0 if none is held.
func (c *Container) Quantity(itemType string) int {
	return c.qty[itemType]
}

// Total returns the sum of all held quantities.
func (c *Container) Total() int {
	total := 0
	for _, n := range c.qty {
		total += n
	}
	return total
}

// Contents returns a copy of the held quantities.
//
// Postcondition: mutations of the result do not affect the container.
func (c *Container) Contents() map[string]int {
	out := make(map[string]int, len(c.qty))
	for k, v := range c.qty {
		out[k] = v
	}
	return out
}

// Types returns the held item types in lexical order.
func (c *Container) Types() []string {
	out := make([]string, 0, len(c.qty))
	for k := range c.qty {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
