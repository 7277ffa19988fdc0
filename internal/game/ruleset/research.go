package ruleset

import (
	"errors"
	"fmt"
)

// ResearchRule defines a research topic.
// Lookup names a secondary topic that is unlocked alongside this one and whose
// encyclopedia article is shown in its place (an autopsy unlocking a report).
type ResearchRule struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Lookup string `yaml:"lookup"`
	Points int    `yaml:"points"`
}

// Validate checks that the ResearchRule satisfies its invariants.
func (r *ResearchRule) Validate() error {
	var errs []error
	if r.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if r.Lookup != "" && r.Lookup == r.ID {
		errs = append(errs, errors.New("Lookup must not reference the topic itself"))
	}
	if r.Points < 0 {
		errs = append(errs, errors.New("Points must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("research %q validation failed: %v", r.ID, errs)
	}
	return nil
}

// Grant is a research topic together with its optional lookup topic.
//
// Invariant: Primary is non-nil; Secondary is nil iff Primary.Lookup is empty.
type Grant struct {
	Primary   *ResearchRule
	Secondary *ResearchRule
}

// Topics returns the topics the grant completes, primary first.
func (g Grant) Topics() []*ResearchRule {
	if g.Secondary == nil {
		return []*ResearchRule{g.Primary}
	}
	return []*ResearchRule{g.Primary, g.Secondary}
}

// Article returns the ID of the topic whose encyclopedia entry represents the grant.
//
// Postcondition: returns Secondary.ID when set, otherwise Primary.ID.
func (g Grant) Article() string {
	if g.Secondary != nil {
		return g.Secondary.ID
	}
	return g.Primary.ID
}
