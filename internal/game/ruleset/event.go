package ruleset

import (
	"errors"
	"fmt"
)

// EventRule is a mod-authored description of a random world occurrence and
// its possible effects on the campaign.
type EventRule struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Background  string `yaml:"background"`
	// RegionList holds candidate target regions; empty means a global event.
	RegionList []string `yaml:"region_list"`
	// CitySpecific names a random city of the chosen region instead of the region.
	CitySpecific bool     `yaml:"city"`
	Points       int      `yaml:"points"`
	Funds        int64    `yaml:"funds"`
	ItemList     []string `yaml:"item_list"`
	ResearchList []string `yaml:"research_list"`
}

// Validate checks the event's own fields. References to other rules are
// checked by Catalog.Validate.
func (r *EventRule) Validate() error {
	var errs []error
	if r.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if r.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	for i, id := range r.RegionList {
		if id == "" {
			errs = append(errs, fmt.Errorf("region_list[%d] must not be empty", i))
		}
	}
	for i, id := range r.ResearchList {
		if id == "" {
			errs = append(errs, fmt.Errorf("research_list[%d] must not be empty", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("event %q validation failed: %v", r.ID, errs)
	}
	return nil
}
