package ruleset

import (
	"errors"
	"fmt"
)

// AmmoSlotMax is the number of ammunition slots an item model can expose.
const AmmoSlotMax = 4

// ItemRule defines the static economic properties of an item type.
type ItemRule struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	BuyCost   int64  `yaml:"buy_cost"`
	SellCost  int64  `yaml:"sell_cost"`
	AmmoSlots int    `yaml:"ammo_slots"`
}

// Validate checks that the ItemRule satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (r *ItemRule) Validate() error {
	var errs []error
	if r.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if r.BuyCost < 0 {
		errs = append(errs, errors.New("BuyCost must be >= 0"))
	}
	if r.SellCost < 0 {
		errs = append(errs, errors.New("SellCost must be >= 0"))
	}
	if r.AmmoSlots < 0 || r.AmmoSlots > AmmoSlotMax {
		errs = append(errs, fmt.Errorf("AmmoSlots must be in [0, %d], got %d", AmmoSlotMax, r.AmmoSlots))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item %q validation failed: %v", r.ID, errs)
	}
	return nil
}
