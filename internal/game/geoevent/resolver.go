// Package geoevent resolves geoscape world events against campaign state.
package geoevent

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/geoscape/internal/game/campaign"
	"github.com/cory-johannsen/geoscape/internal/game/dice"
	"github.com/cory-johannsen/geoscape/internal/game/i18n"
	"github.com/cory-johannsen/geoscape/internal/game/ruleset"
)

// TransferHours is the transit time of an item granted by an event.
const TransferHours = 1

// Rules is the rule lookup the resolver needs. *ruleset.Catalog satisfies it.
type Rules interface {
	Item(id string) (*ruleset.ItemRule, bool)
	Region(id string) *ruleset.RegionRule
	Research(id string) *ruleset.ResearchRule
	ResearchGrant(id string) ruleset.Grant
	Event(id string) (*ruleset.EventRule, bool)
}

// Translator supplies localized templates. *i18n.Language satisfies it.
type Translator interface {
	Tr(key string) i18n.Text
}

// Outcome describes what resolving an event did, for the notification shown
// to the player.
type Outcome struct {
	Event      *ruleset.EventRule
	Title      string
	Message    string
	Background string
	// Place is the region or city name substituted into the texts; empty for global events.
	Place string
	// Region is the targeted region, or nil for a global event.
	Region *ruleset.RegionRule
	// ItemType is the item sent to HQ, or empty.
	ItemType string
	// Grant is the research granted, or nil.
	Grant *ruleset.Grant
	// Research is the topic whose encyclopedia article follows the
	// notification, or empty.
	Research string
}

// Article returns the encyclopedia article to open when the notification is
// dismissed.
func (o Outcome) Article() (string, bool) {
	return o.Research, o.Research != ""
}

// Resolver applies event effects. It holds no campaign state of its own.
type Resolver struct {
	rules  Rules
	lang   Translator
	src    dice.Source
	logger *zap.Logger
}

// NewResolver returns a Resolver drawing randomness from src.
//
// Precondition: rules, lang and src must be non-nil. A nil logger is replaced with a no-op logger.
func NewResolver(rules Rules, lang Translator, src dice.Source, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{rules: rules, lang: lang, src: src, logger: logger}
}

// ResolveByID looks up the event rule by ID and resolves it.
//
// Postcondition: returns an error only when id is not a known event.
func (r *Resolver) ResolveByID(c *campaign.Campaign, id string) (Outcome, error) {
	rule, ok := r.rules.Event(id)
	if !ok {
		return Outcome{}, fmt.Errorf("geoevent: unknown event %q", id)
	}
	return r.Resolve(c, rule), nil
}

// Resolve applies rule to c in a fixed order: target selection, score,
// funds, item transfer to HQ, research grant.
//
// Precondition: c must have at least one base; every region and research ID
// named by rule must be known. Violations panic as content errors.
func (r *Resolver) Resolve(c *campaign.Campaign, rule *ruleset.EventRule) Outcome {
	hq := c.HQ()
	if hq == nil {
		panic("geoevent: Resolver.Resolve: campaign has no bases")
	}
	out := Outcome{
		Event:      rule,
		Title:      r.lang.Tr(rule.Name).String(),
		Message:    r.lang.Tr(rule.Description).String(),
		Background: rule.Background,
	}

	r.selectTarget(rule, &out)

	if out.Region != nil {
		if !c.AddRegionActivity(out.Region, rule.Points) {
			r.logger.Warn("event region is not tracked by the campaign",
				zap.String("event", rule.ID),
				zap.String("region", out.Region.ID),
			)
		}
	} else {
		c.AddResearchScore(rule.Points)
	}

	c.AddFunds(rule.Funds)

	if id, ok := dice.Pick(r.src, rule.ItemList); ok {
		if item, found := r.rules.Item(id); found {
			hq.QueueTransfer(campaign.NewItemTransfer(item.ID, 1, TransferHours))
			out.ItemType = item.ID
		} else {
			r.logger.Warn("event item is not a known item type",
				zap.String("event", rule.ID),
				zap.String("item", id),
			)
		}
	}

	if g, ok := r.pickResearch(c, rule); ok {
		for _, topic := range g.Topics() {
			c.AddFinishedResearch(topic, hq, true)
		}
		out.Grant = &g
		out.Research = g.Article()
	}

	r.logger.Info("geoscape event resolved",
		zap.String("event", rule.ID),
		zap.String("place", out.Place),
		zap.Int("points", rule.Points),
		zap.Int64("funds", rule.Funds),
		zap.String("item", out.ItemType),
		zap.String("research", out.Research),
	)
	return out
}

// selectTarget picks the target region and, for city-specific events, a
// city, then substitutes the place name into the title and message.
func (r *Resolver) selectTarget(rule *ruleset.EventRule, out *Outcome) {
	id, ok := dice.Pick(r.src, rule.RegionList)
	if !ok {
		return
	}
	region := r.rules.Region(id)
	out.Region = region
	out.Place = r.lang.Tr(region.DisplayName()).String()
	if rule.CitySpecific {
		if city, ok := dice.Pick(r.src, region.Cities); ok {
			out.Place = r.lang.Tr(city.Name).String()
		}
	}
	out.Title = r.lang.Tr(rule.Name).Arg(out.Place).String()
	out.Message = r.lang.Tr(rule.Description).Arg(out.Place).String()
}

// pickResearch chooses one not yet completed topic from the event's list.
// Only the topic itself is checked, not its prerequisites.
func (r *Resolver) pickResearch(c *campaign.Campaign, rule *ruleset.EventRule) (ruleset.Grant, bool) {
	var open []*ruleset.ResearchRule
	for _, id := range rule.ResearchList {
		topic := r.rules.Research(id)
		if !c.IsResearched(topic.ID) {
			open = append(open, topic)
		}
	}
	topic, ok := dice.Pick(r.src, open)
	if !ok {
		return ruleset.Grant{}, false
	}
	return r.rules.ResearchGrant(topic.ID), true
}
