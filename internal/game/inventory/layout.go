package inventory

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/geoscape/internal/game/ruleset"
)

// NoAmmo marks an ammunition slot with nothing loaded.
const NoAmmo = "NONE"

// NoFuse marks a fuse timer that is not counting down.
const NoFuse = -1

// BattleItem is the view of a live equipped item needed to snapshot it into
// a LayoutItem.
type BattleItem interface {
	ItemType() string
	// SlotMatchID is the layout match ID of the inventory slot holding the item.
	SlotMatchID() string
	SlotX() int
	SlotY() int
	// LoadedAmmo returns the ammo type in slot when the item uses that slot and
	// has ammo loaded.
	LoadedAmmo(slot int) (string, bool)
	FuseTimer() int
}

// LayoutItem records where one item sits in a soldier's equipment layout,
// the ammunition loaded into it and its fuse timer.
// A LayoutItem is a value; it has no setters.
//
// Invariant: every ammo entry is an item type or NoAmmo.
type LayoutItem struct {
	itemType  string
	slot      string
	slotX     int
	slotY     int
	ammo      [ruleset.AmmoSlotMax]string
	fuseTimer int
}

// NewLayoutItem builds a LayoutItem. Empty ammo entries become NoAmmo.
//
// Postcondition: AmmoFor(i) is non-empty for every i.
func NewLayoutItem(itemType, slot string, slotX, slotY int, ammo [ruleset.AmmoSlotMax]string, fuseTimer int) LayoutItem {
	l := LayoutItem{
		itemType:  itemType,
		slot:      slot,
		slotX:     slotX,
		slotY:     slotY,
		ammo:      ammo,
		fuseTimer: fuseTimer,
	}
	l.normalizeAmmo()
	return l
}

// LayoutFromItem snapshots a live equipped item.
//
// Precondition: item must be non-nil.
func LayoutFromItem(item BattleItem) LayoutItem {
	var ammo [ruleset.AmmoSlotMax]string
	for slot := range ammo {
		if t, ok := item.LoadedAmmo(slot); ok && t != "" {
			ammo[slot] = t
		} else {
			ammo[slot] = NoAmmo
		}
	}
	return LayoutItem{
		itemType:  item.ItemType(),
		slot:      item.SlotMatchID(),
		slotX:     item.SlotX(),
		slotY:     item.SlotY(),
		ammo:      ammo,
		fuseTimer: item.FuseTimer(),
	}
}

func (l *LayoutItem) normalizeAmmo() {
	for i := range l.ammo {
		if l.ammo[i] == "" {
			l.ammo[i] = NoAmmo
		}
	}
}

// ItemType returns the item type that occupies the slot.
func (l LayoutItem) ItemType() string { return l.itemType }

// SlotMatchID returns the match ID of the slot to occupy.
func (l LayoutItem) SlotMatchID() string { return l.slot }

// SlotX returns the X position inside the slot.
func (l LayoutItem) SlotX() int { return l.slotX }

// SlotY returns the Y position inside the slot.
func (l LayoutItem) SlotY() int { return l.slotY }

// AmmoFor returns the ammo type loaded into ammo slot i, or NoAmmo.
//
// Precondition: 0 <= i < ruleset.AmmoSlotMax.
func (l LayoutItem) AmmoFor(i int) string { return l.ammo[i] }

// FuseTimer returns the turns until the item explodes, or NoFuse.
func (l LayoutItem) FuseTimer() int { return l.fuseTimer }

// Validate checks that the item type and every loaded ammo type resolve.
func (l LayoutItem) Validate(rules ItemLookup) error {
	if _, ok := rules.Item(l.itemType); !ok {
		return fmt.Errorf("layout: unknown item type %q", l.itemType)
	}
	for i, a := range l.ammo {
		if a == NoAmmo {
			continue
		}
		if _, ok := rules.Item(a); !ok {
			return fmt.Errorf("layout: item %q ammo slot %d: unknown ammo type %q", l.itemType, i, a)
		}
	}
	return nil
}

type layoutDoc struct {
	ItemType      string   `yaml:"itemType"`
	Slot          string   `yaml:"slot"`
	SlotX         int      `yaml:"slotX,omitempty"`
	SlotY         int      `yaml:"slotY,omitempty"`
	AmmoItem      string   `yaml:"ammoItem,omitempty"`
	AmmoItemSlots []string `yaml:"ammoItemSlots,flow"`
	FuseTimer     *int     `yaml:"fuseTimer,omitempty"`
}

// MarshalYAML writes the persisted layout shape. Zero slot positions, an
// empty legacy ammo field and an inactive fuse are omitted; ammoItemSlots is
// always written in full.
func (l LayoutItem) MarshalYAML() (interface{}, error) {
	doc := layoutDoc{
		ItemType:      l.itemType,
		Slot:          l.slot,
		SlotX:         l.slotX,
		SlotY:         l.slotY,
		AmmoItemSlots: make([]string, len(l.ammo)),
	}
	copy(doc.AmmoItemSlots, l.ammo[:])
	if l.ammo[0] != NoAmmo {
		doc.AmmoItem = l.ammo[0]
	}
	if l.fuseTimer >= 0 {
		fuse := l.fuseTimer
		doc.FuseTimer = &fuse
	}
	return doc, nil
}

// UnmarshalYAML reads the persisted layout shape. itemType and slot keep
// their current values when absent, positions default to 0 and the fuse to
// NoFuse. The legacy ammoItem field fills slot 0 and is overridden by
// ammoItemSlots when both are present.
func (l *LayoutItem) UnmarshalYAML(value *yaml.Node) error {
	var doc struct {
		ItemType      *string  `yaml:"itemType"`
		Slot          *string  `yaml:"slot"`
		SlotX         int      `yaml:"slotX"`
		SlotY         int      `yaml:"slotY"`
		AmmoItem      *string  `yaml:"ammoItem"`
		AmmoItemSlots []string `yaml:"ammoItemSlots"`
		FuseTimer     *int     `yaml:"fuseTimer"`
	}
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	l.normalizeAmmo()
	if doc.ItemType != nil {
		l.itemType = *doc.ItemType
	}
	if doc.Slot != nil {
		l.slot = *doc.Slot
	}
	l.slotX = doc.SlotX
	l.slotY = doc.SlotY
	if doc.AmmoItem != nil {
		l.ammo[0] = *doc.AmmoItem
	}
	for i := 0; i < len(l.ammo) && i < len(doc.AmmoItemSlots); i++ {
		l.ammo[i] = doc.AmmoItemSlots[i]
	}
	l.normalizeAmmo()
	l.fuseTimer = NoFuse
	if doc.FuseTimer != nil {
		l.fuseTimer = *doc.FuseTimer
	}
	return nil
}

// Layout is a soldier's full equipment layout.
type Layout []LayoutItem

// MarshalLayout encodes a layout as a YAML sequence.
func MarshalLayout(l Layout) ([]byte, error) {
	return yaml.Marshal(l)
}

// UnmarshalLayout decodes a YAML sequence of layout records.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: parsing: %w", err)
	}
	return l, nil
}
