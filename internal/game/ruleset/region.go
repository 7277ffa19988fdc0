package ruleset

import (
	"errors"
	"fmt"
)

// City is a named location inside a region. Name is a string-table key.
type City struct {
	Name string  `yaml:"name"`
	Lon  float64 `yaml:"lon"`
	Lat  float64 `yaml:"lat"`
}

// RegionRule defines a geoscape region and the cities it contains.
//
// Precondition: ID must be non-empty after loading.
type RegionRule struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Cities []City `yaml:"cities"`
}

// DisplayName returns the string-table key used to name the region,
// falling back to the ID when no Name is configured.
//
// Postcondition: Returns a non-empty string when ID is non-empty.
func (r *RegionRule) DisplayName() string {
	if r.Name == "" {
		return r.ID
	}
	return r.Name
}

// Validate checks that the RegionRule satisfies its invariants.
func (r *RegionRule) Validate() error {
	var errs []error
	if r.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	for i, c := range r.Cities {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("city[%d] must have a name", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("region %q validation failed: %v", r.ID, errs)
	}
	return nil
}
