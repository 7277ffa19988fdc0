package ruleset

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog holds every loaded rule indexed by ID.
//
// Invariant: each ID appears at most once per rule kind, so a region ID
// identifies exactly one *RegionRule.
type Catalog struct {
	items    map[string]*ItemRule
	regions  map[string]*RegionRule
	research map[string]*ResearchRule
	events   map[string]*EventRule
}

// NewCatalog returns an empty Catalog.
//
// Postcondition: all internal maps are initialised.
func NewCatalog() *Catalog {
	return &Catalog{
		items:    make(map[string]*ItemRule),
		regions:  make(map[string]*RegionRule),
		research: make(map[string]*ResearchRule),
		events:   make(map[string]*EventRule),
	}
}

// RegisterItem adds r to the catalog.
//
// Precondition: r must not be nil.
// Postcondition: Item(r.ID) returns (r, true); returns error if r is invalid or already registered.
func (c *Catalog) RegisterItem(r *ItemRule) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if _, exists := c.items[r.ID]; exists {
		return fmt.Errorf("ruleset: Catalog.RegisterItem: item ID %q already registered", r.ID)
	}
	c.items[r.ID] = r
	return nil
}

// RegisterRegion adds r to the catalog.
//
// Precondition: r must not be nil.
// Postcondition: Region(r.ID) returns r; returns error if r is invalid or already registered.
func (c *Catalog) RegisterRegion(r *RegionRule) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if _, exists := c.regions[r.ID]; exists {
		return fmt.Errorf("ruleset: Catalog.RegisterRegion: region ID %q already registered", r.ID)
	}
	c.regions[r.ID] = r
	return nil
}

// RegisterResearch adds r to the catalog.
//
// Precondition: r must not be nil.
// Postcondition: Research(r.ID) returns r; returns error if r is invalid or already registered.
func (c *Catalog) RegisterResearch(r *ResearchRule) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if _, exists := c.research[r.ID]; exists {
		return fmt.Errorf("ruleset: Catalog.RegisterResearch: research ID %q already registered", r.ID)
	}
	c.research[r.ID] = r
	return nil
}

// RegisterEvent adds r to the catalog.
//
// Precondition: r must not be nil.
// Postcondition: Event(r.ID) returns (r, true); returns error if r is invalid or already registered.
func (c *Catalog) RegisterEvent(r *EventRule) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if _, exists := c.events[r.ID]; exists {
		return fmt.Errorf("ruleset: Catalog.RegisterEvent: event ID %q already registered", r.ID)
	}
	c.events[r.ID] = r
	return nil
}

// Item returns the ItemRule for id and whether it was found.
// Unknown or empty IDs are not an error.
func (c *Catalog) Item(id string) (*ItemRule, bool) {
	if id == "" {
		return nil, false
	}
	r, ok := c.items[id]
	return r, ok
}

// Region returns the RegionRule for id.
//
// Precondition: id must be registered. Panics otherwise; an unknown region
// referenced by content is an authoring error.
func (c *Catalog) Region(id string) *RegionRule {
	r, ok := c.regions[id]
	if !ok {
		panic(fmt.Sprintf("ruleset: Catalog.Region: unknown region %q", id))
	}
	return r
}

// Research returns the ResearchRule for id.
//
// Precondition: id must be registered. Panics otherwise.
func (c *Catalog) Research(id string) *ResearchRule {
	r, ok := c.research[id]
	if !ok {
		panic(fmt.Sprintf("ruleset: Catalog.Research: unknown research %q", id))
	}
	return r
}

// ResearchGrant resolves id and its lookup topic, if any, into a Grant.
//
// Precondition: id and its lookup (when set) must be registered. Panics otherwise.
func (c *Catalog) ResearchGrant(id string) Grant {
	g := Grant{Primary: c.Research(id)}
	if g.Primary.Lookup != "" {
		g.Secondary = c.Research(g.Primary.Lookup)
	}
	return g
}

// Event returns the EventRule for id and whether it was found.
func (c *Catalog) Event(id string) (*EventRule, bool) {
	r, ok := c.events[id]
	return r, ok
}

// Events returns all event rules ordered by ID.
func (c *Catalog) Events() []*EventRule {
	out := make([]*EventRule, 0, len(c.events))
	for _, r := range c.events {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Regions returns all region rules ordered by ID.
func (c *Catalog) Regions() []*RegionRule {
	out := make([]*RegionRule, 0, len(c.regions))
	for _, r := range c.regions {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Counts returns the number of registered items, regions, research topics and events.
func (c *Catalog) Counts() (items, regions, research, events int) {
	return len(c.items), len(c.regions), len(c.research), len(c.events)
}

// Validate checks every cross reference that must resolve at event time:
// event regions, event research topics and research lookups.
//
// Postcondition: returns nil iff every reference resolves; otherwise an error listing all of them.
func (c *Catalog) Validate() error {
	var errs []string
	for _, r := range c.research {
		if r.Lookup != "" {
			if _, ok := c.research[r.Lookup]; !ok {
				errs = append(errs, fmt.Sprintf("research %q: unknown lookup %q", r.ID, r.Lookup))
			}
		}
	}
	for _, e := range c.events {
		for _, id := range e.RegionList {
			if _, ok := c.regions[id]; !ok {
				errs = append(errs, fmt.Sprintf("event %q: unknown region %q", e.ID, id))
			}
		}
		for _, id := range e.ResearchList {
			if _, ok := c.research[id]; !ok {
				errs = append(errs, fmt.Sprintf("event %q: unknown research %q", e.ID, id))
			}
		}
	}
	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("ruleset: catalog validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Warnings lists references that are tolerated at event time but probably
// unintended: event items that do not resolve to an item rule.
func (c *Catalog) Warnings() []string {
	var out []string
	for _, e := range c.events {
		for _, id := range e.ItemList {
			if _, ok := c.Item(id); !ok {
				out = append(out, fmt.Sprintf("event %q: unknown item %q", e.ID, id))
			}
		}
	}
	sort.Strings(out)
	return out
}
