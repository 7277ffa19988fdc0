package campaign

import "github.com/cory-johannsen/geoscape/internal/game/ruleset"

// Region tracks the accumulated X-Com activity score for one region.
type Region struct {
	Rules        *ruleset.RegionRule
	activityXcom int
}

// AddActivityXcom adds points, which may be negative or zero, to the score.
func (r *Region) AddActivityXcom(points int) {
	r.activityXcom += points
}

// ActivityXcom returns the accumulated score.
func (r *Region) ActivityXcom() int {
	return r.activityXcom
}
