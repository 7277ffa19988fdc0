// Package campaign holds the persistent state of a running campaign: the
// treasury, per-region activity, completed research and the player's bases.
package campaign

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/geoscape/internal/game/inventory"
	"github.com/cory-johannsen/geoscape/internal/game/ruleset"
)

// Discovery records a completed research topic and the base credited with it.
type Discovery struct {
	Research *ruleset.ResearchRule
	Base     *Base
}

// Campaign is the single aggregate owning all mutable campaign state.
// It is not safe for concurrent use.
type Campaign struct {
	funds         int64
	researchScore int
	regions       []*Region
	discoveries   []Discovery
	researched    map[string]bool
	bases         []*Base
	items         inventory.ItemLookup
	logger        *zap.Logger
}

// New returns a campaign with the given opening balance and no regions,
// research or bases.
//
// Precondition: items must be non-nil. A nil logger is replaced with a no-op logger.
func New(items inventory.ItemLookup, funds int64, logger *zap.Logger) *Campaign {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Campaign{
		funds:      funds,
		researched: make(map[string]bool),
		items:      items,
		logger:     logger,
	}
}

// Funds returns the treasury balance.
func (c *Campaign) Funds() int64 {
	return c.funds
}

// SetFunds replaces the treasury balance.
func (c *Campaign) SetFunds(funds int64) {
	c.logger.Debug("funds changed",
		zap.Int64("from", c.funds),
		zap.Int64("to", funds),
		zap.Int64("delta", funds-c.funds),
	)
	c.funds = funds
}

// AddFunds adds delta, which may be negative, to the treasury.
func (c *Campaign) AddFunds(delta int64) {
	c.SetFunds(c.funds + delta)
}

// ResearchScore returns the global research score counter.
func (c *Campaign) ResearchScore() int {
	return c.researchScore
}

// AddResearchScore adds points to the global research score counter.
func (c *Campaign) AddResearchScore(points int) {
	c.researchScore += points
	c.logger.Debug("research score changed",
		zap.Int("points", points),
		zap.Int("total", c.researchScore),
	)
}

// AddRegion starts tracking activity for the region described by rule.
//
// Precondition: rule must be non-nil.
func (c *Campaign) AddRegion(rule *ruleset.RegionRule) *Region {
	r := &Region{Rules: rule}
	c.regions = append(c.regions, r)
	return r
}

// Regions returns the tracked regions in the order they were added.
func (c *Campaign) Regions() []*Region {
	out := make([]*Region, len(c.regions))
	copy(out, c.regions)
	return out
}

// RegionFor returns the first tracked region whose rule is rule, or nil.
// Matching is by rule identity, which is unique per region ID in a Catalog.
func (c *Campaign) RegionFor(rule *ruleset.RegionRule) *Region {
	for _, r := range c.regions {
		if r.Rules == rule {
			return r
		}
	}
	return nil
}

// AddRegionActivity adds points to the X-Com activity of the region tracked
// for rule.
//
// Postcondition: returns false and changes nothing when no region matches.
func (c *Campaign) AddRegionActivity(rule *ruleset.RegionRule, points int) bool {
	r := c.RegionFor(rule)
	if r == nil {
		return false
	}
	r.AddActivityXcom(points)
	c.logger.Debug("region activity changed",
		zap.String("region", rule.ID),
		zap.Int("points", points),
		zap.Int("total", r.ActivityXcom()),
	)
	return true
}

// IsResearched reports whether the topic id has been completed. Prerequisites
// are not consulted.
func (c *Campaign) IsResearched(id string) bool {
	return c.researched[id]
}

// AddFinishedResearch marks rule completed and credits base with the
// discovery. When score is true the topic's points are added to the research
// score. Completing an already completed topic does nothing.
//
// Precondition: rule must be non-nil.
func (c *Campaign) AddFinishedResearch(rule *ruleset.ResearchRule, base *Base, score bool) {
	if c.researched[rule.ID] {
		return
	}
	c.researched[rule.ID] = true
	c.discoveries = append(c.discoveries, Discovery{Research: rule, Base: base})
	fields := []zap.Field{zap.String("research", rule.ID)}
	if base != nil {
		fields = append(fields, zap.String("base", base.Name))
	}
	c.logger.Debug("research completed", fields...)
	if score && rule.Points != 0 {
		c.AddResearchScore(rule.Points)
	}
}

// Discoveries returns completed research in completion order.
func (c *Campaign) Discoveries() []Discovery {
	out := make([]Discovery, len(c.discoveries))
	copy(out, c.discoveries)
	return out
}

// AddBase creates a base with empty, unlimited storage whose stock sales
// credit this campaign's treasury.
//
// Postcondition: the first base added is HQ().
func (c *Campaign) AddBase(name string) *Base {
	b := newBase(name, inventory.NewLimitedContainer(c.items, c, c.logger), c.logger)
	c.bases = append(c.bases, b)
	return b
}

// Bases returns the player's bases in founding order.
func (c *Campaign) Bases() []*Base {
	out := make([]*Base, len(c.bases))
	copy(out, c.bases)
	return out
}

// HQ returns the first base, or nil if the player has none.
func (c *Campaign) HQ() *Base {
	if len(c.bases) == 0 {
		return nil
	}
	return c.bases[0]
}
