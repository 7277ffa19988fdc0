package ruleset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/geoscape/internal/game/ruleset"
)

func newCatalog(t *testing.T) *ruleset.Catalog {
	t.Helper()
	c := ruleset.NewCatalog()
	require.NoError(t, c.RegisterItem(&ruleset.ItemRule{ID: "STR_ELERIUM_115", SellCost: 5000}))
	require.NoError(t, c.RegisterRegion(&ruleset.RegionRule{ID: "STR_EUROPE"}))
	require.NoError(t, c.RegisterResearch(&ruleset.ResearchRule{ID: "STR_ALIEN_AUTOPSY", Lookup: "STR_ALIEN_REPORT"}))
	require.NoError(t, c.RegisterResearch(&ruleset.ResearchRule{ID: "STR_ALIEN_REPORT"}))
	require.NoError(t, c.RegisterResearch(&ruleset.ResearchRule{ID: "STR_LASER_WEAPONS"}))
	return c
}

func TestCatalog_Item_UnknownIsSoft(t *testing.T) {
	c := newCatalog(t)
	_, ok := c.Item("STR_NOPE")
	assert.False(t, ok)
	_, ok = c.Item("")
	assert.False(t, ok)
}

func TestCatalog_Region_UnknownPanics(t *testing.T) {
	c := newCatalog(t)
	assert.PanicsWithValue(t, `ruleset: Catalog.Region: unknown region "STR_MARS"`, func() {
		c.Region("STR_MARS")
	})
}

func TestCatalog_Research_UnknownPanics(t *testing.T) {
	c := newCatalog(t)
	assert.Panics(t, func() { c.Research("STR_NOPE") })
}

func TestCatalog_ResearchGrant_WithLookup(t *testing.T) {
	c := newCatalog(t)
	g := c.ResearchGrant("STR_ALIEN_AUTOPSY")
	require.NotNil(t, g.Secondary)
	assert.Equal(t, "STR_ALIEN_AUTOPSY", g.Primary.ID)
	assert.Equal(t, "STR_ALIEN_REPORT", g.Secondary.ID)
	assert.Equal(t, "STR_ALIEN_REPORT", g.Article())
	assert.Len(t, g.Topics(), 2)
}

func TestCatalog_ResearchGrant_WithoutLookup(t *testing.T) {
	c := newCatalog(t)
	g := c.ResearchGrant("STR_LASER_WEAPONS")
	assert.Nil(t, g.Secondary)
	assert.Equal(t, "STR_LASER_WEAPONS", g.Article())
	assert.Len(t, g.Topics(), 1)
}

func TestCatalog_Validate_DanglingLookup(t *testing.T) {
	c := ruleset.NewCatalog()
	require.NoError(t, c.RegisterResearch(&ruleset.ResearchRule{ID: "STR_A", Lookup: "STR_B"}))
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown lookup "STR_B"`)
}

func TestCatalog_Validate_ReportsEveryDanglingReference(t *testing.T) {
	c := newCatalog(t)
	require.NoError(t, c.RegisterEvent(&ruleset.EventRule{
		ID:           "STR_EV",
		Name:         "STR_EV",
		RegionList:   []string{"STR_EUROPE", "STR_MOON"},
		ResearchList: []string{"STR_GHOST"},
	}))
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STR_MOON")
	assert.Contains(t, err.Error(), "STR_GHOST")
}

func TestCatalog_Warnings_UnknownItems(t *testing.T) {
	c := newCatalog(t)
	require.NoError(t, c.RegisterEvent(&ruleset.EventRule{
		ID:       "STR_EV",
		Name:     "STR_EV",
		ItemList: []string{"STR_ELERIUM_115", "STR_UNOBTAINIUM"},
	}))
	require.NoError(t, c.Validate())
	assert.Equal(t, []string{`event "STR_EV": unknown item "STR_UNOBTAINIUM"`}, c.Warnings())
}

func TestCatalog_Register_RejectsInvalid(t *testing.T) {
	c := ruleset.NewCatalog()
	assert.Error(t, c.RegisterItem(&ruleset.ItemRule{ID: "STR_X", SellCost: -1}))
	assert.Error(t, c.RegisterItem(&ruleset.ItemRule{ID: "STR_X", AmmoSlots: ruleset.AmmoSlotMax + 1}))
	assert.Error(t, c.RegisterResearch(&ruleset.ResearchRule{ID: "STR_X", Lookup: "STR_X"}))
	assert.Error(t, c.RegisterEvent(&ruleset.EventRule{ID: "STR_X"}))
}

func TestCatalog_Events_SortedByID(t *testing.T) {
	c := ruleset.NewCatalog()
	for _, id := range []string{"STR_C", "STR_A", "STR_B"} {
		require.NoError(t, c.RegisterEvent(&ruleset.EventRule{ID: id, Name: id}))
	}
	var ids []string
	for _, e := range c.Events() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"STR_A", "STR_B", "STR_C"}, ids)
}
