package inventory

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/geoscape/internal/game/ruleset"
)

// NoLimit is returned by ItemLimit when an item type has no configured limit.
const NoLimit = -1

// ItemLookup resolves item types to their rules.
type ItemLookup interface {
	Item(id string) (*ruleset.ItemRule, bool)
}

// Treasury is the balance credited when excess stock is sold.
type Treasury interface {
	Funds() int64
	SetFunds(funds int64)
}

// LimitedContainer applies per-item stock limits on top of a Container.
// Stock added above a limit is sold immediately and the sale value is
// credited to the treasury.
//
// Invariant: after AddItem or SetItemLimit returns, every item type with a
// limit holds at most that limit.
type LimitedContainer struct {
	items    *Container
	limits   map[string]int
	rules    ItemLookup
	treasury Treasury
	logger   *zap.Logger
}

// NewLimitedContainer returns an empty LimitedContainer bound to the given
// item rules and treasury.
//
// Precondition: rules and treasury must be non-nil. A nil logger is replaced with a no-op logger.
func NewLimitedContainer(rules ItemLookup, treasury Treasury, logger *zap.Logger) *LimitedContainer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LimitedContainer{
		items:    NewContainer(),
		limits:   make(map[string]int),
		rules:    rules,
		treasury: treasury,
		logger:   logger,
	}
}

// LoadLimits replaces all limits with the given mapping. Negative values mean
// "no limit" and are dropped. Held stock is not re-checked.
//
// Postcondition: a map previously returned by Limits stays live.
func (c *LimitedContainer) LoadLimits(limits map[string]int) {
	clear(c.limits)
	for id, n := range limits {
		if id == "" || n < 0 {
			continue
		}
		c.limits[id] = n
	}
}

// SaveLimits returns a copy of the configured limits.
func (c *LimitedContainer) SaveLimits() map[string]int {
	out := make(map[string]int, len(c.limits))
	for k, v := range c.limits {
		out[k] = v
	}
	return out
}

// UnmarshalLimits parses a flat item-type to limit YAML mapping and loads it.
//
// Postcondition: on error the current limits are unchanged.
func (c *LimitedContainer) UnmarshalLimits(data []byte) error {
	var limits map[string]int
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return fmt.Errorf("inventory: parsing limits: %w", err)
	}
	c.LoadLimits(limits)
	return nil
}

// MarshalLimits encodes the configured limits as a flat YAML mapping.
func (c *LimitedContainer) MarshalLimits() ([]byte, error) {
	return yaml.Marshal(c.limits)
}

// AddItem adds qty units of the item type with the given ID. Unknown or empty
// IDs are ignored.
func (c *LimitedContainer) AddItem(itemType string, qty int) {
	rule, ok := c.rules.Item(itemType)
	if !ok {
		return
	}
	c.AddRule(rule, qty)
}

// AddRule adds qty units of rule's item type, then sells anything held above
// the item's limit and credits qty*SellCost for the excess.
//
// Postcondition: Quantity(rule.ID) <= ItemLimitFor(rule) when a limit is set.
func (c *LimitedContainer) AddRule(rule *ruleset.ItemRule, qty int) {
	if rule == nil || rule.ID == "" {
		return
	}
	c.items.Add(rule.ID, qty)

	limit, ok := c.limits[rule.ID]
	if !ok {
		return
	}
	excess := c.items.Quantity(rule.ID) - limit
	if excess <= 0 {
		return
	}
	c.items.Remove(rule.ID, excess)
	refund := int64(excess) * rule.SellCost
	c.treasury.SetFunds(c.treasury.Funds() + refund)
	c.logger.Debug("sold excess stock",
		zap.String("item", rule.ID),
		zap.Int("excess", excess),
		zap.Int("limit", limit),
		zap.Int64("refund", refund),
	)
}

// ItemLimit returns the limit for itemType, or NoLimit if none is set.
func (c *LimitedContainer) ItemLimit(itemType string) int {
	if itemType == "" {
		return NoLimit
	}
	if n, ok := c.limits[itemType]; ok {
		return n
	}
	return NoLimit
}

// ItemLimitFor returns the limit for rule's item type, or NoLimit for a nil rule.
func (c *LimitedContainer) ItemLimitFor(rule *ruleset.ItemRule) int {
	if rule == nil {
		return NoLimit
	}
	return c.ItemLimit(rule.ID)
}

// SetItemLimit sets the limit for itemType and immediately sells any stock
// above it. A negative limit removes the limit without touching held stock.
func (c *LimitedContainer) SetItemLimit(itemType string, limit int) {
	if itemType == "" {
		return
	}
	if limit < 0 {
		delete(c.limits, itemType)
		return
	}
	c.limits[itemType] = limit
	c.AddItem(itemType, 0)
}

// Limits exposes the live limit mapping for bulk editing by the owner.
// Edits take effect at the next AddItem for the affected type.
func (c *LimitedContainer) Limits() map[string]int {
	return c.limits
}

// Quantity returns the held quantity of itemType.
func (c *LimitedContainer) Quantity(itemType string) int {
	return c.items.Quantity(itemType)
}

// Remove takes up to qty units of itemType out of storage.
func (c *LimitedContainer) Remove(itemType string, qty int) {
	c.items.Remove(itemType, qty)
}

// Total returns the sum of all held quantities.
func (c *LimitedContainer) Total() int {
	return c.items.Total()
}

// Contents returns a copy of the held quantities.
func (c *LimitedContainer) Contents() map[string]int {
	return c.items.Contents()
}

// Restore replaces held stock with contents verbatim, bypassing limits and
// the treasury. It is used when reloading persisted state.
func (c *LimitedContainer) Restore(contents map[string]int) {
	c.items = NewContainer()
	for id, n := range contents {
		c.items.Add(id, n)
	}
}
