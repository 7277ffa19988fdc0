package ruleset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/geoscape/internal/game/ruleset"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func writeContent(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "items", "alloys.yaml"), `
id: STR_ALIEN_ALLOYS
name: Alien Alloys
buy_cost: 0
sell_cost: 6500
`)
	writeFile(t, filepath.Join(root, "items", "misc.yml"), `
- id: STR_ELERIUM_115
  sell_cost: 5000
- id: STR_RIFLE
  buy_cost: 3000
  sell_cost: 2400
  ammo_slots: 1
`)
	writeFile(t, filepath.Join(root, "regions", "regions.yaml"), `
- id: STR_NORTH_AMERICA
  cities:
    - name: STR_NEW_YORK
    - name: STR_WASHINGTON
- id: STR_ANTARCTICA
`)
	writeFile(t, filepath.Join(root, "research", "autopsy.yaml"), `
- id: STR_SECTOID_AUTOPSY
  lookup: STR_SECTOID_REPORT
  points: 40
- id: STR_SECTOID_REPORT
`)
	writeFile(t, filepath.Join(root, "events", "crash.yaml"), `
id: STR_CRASH_EVENT
name: STR_CRASH_EVENT_TITLE
description: STR_CRASH_EVENT_DESC
background: BACK13.SCR
region_list: [STR_NORTH_AMERICA]
city: true
points: 100
funds: 25000
item_list: [STR_ALIEN_ALLOYS]
research_list: [STR_SECTOID_AUTOPSY]
`)
	writeFile(t, filepath.Join(root, "events", "README.txt"), "ignored")
	return root
}

func TestLoadCatalog_ParsesAllKinds(t *testing.T) {
	c, err := ruleset.LoadCatalog(writeContent(t))
	require.NoError(t, err)

	items, regions, research, events := c.Counts()
	assert.Equal(t, 3, items)
	assert.Equal(t, 2, regions)
	assert.Equal(t, 2, research)
	assert.Equal(t, 1, events)

	rifle, ok := c.Item("STR_RIFLE")
	require.True(t, ok)
	assert.Equal(t, int64(2400), rifle.SellCost)
	assert.Equal(t, 1, rifle.AmmoSlots)

	na := c.Region("STR_NORTH_AMERICA")
	require.Len(t, na.Cities, 2)
	assert.Equal(t, "STR_WASHINGTON", na.Cities[1].Name)

	ev, ok := c.Event("STR_CRASH_EVENT")
	require.True(t, ok)
	assert.True(t, ev.CitySpecific)
	assert.Equal(t, int64(25000), ev.Funds)
	assert.Equal(t, 100, ev.Points)
	assert.Equal(t, []string{"STR_ALIEN_ALLOYS"}, ev.ItemList)
	assert.Equal(t, "BACK13.SCR", ev.Background)
}

func TestLoadCatalog_MissingKindDirectoriesAreEmpty(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "items", "a.yaml"), "id: STR_A\n")
	c, err := ruleset.LoadCatalog(root)
	require.NoError(t, err)
	items, regions, research, events := c.Counts()
	assert.Equal(t, []int{1, 0, 0, 0}, []int{items, regions, research, events})
}

func TestLoadCatalog_RejectsDanglingRegion(t *testing.T) {
	root := writeContent(t)
	writeFile(t, filepath.Join(root, "events", "bad.yaml"), `
id: STR_BAD
name: STR_BAD
region_list: [STR_ATLANTIS]
`)
	_, err := ruleset.LoadCatalog(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STR_ATLANTIS")
}

func TestLoadCatalog_RejectsDuplicateIDs(t *testing.T) {
	root := writeContent(t)
	writeFile(t, filepath.Join(root, "items", "dupe.yaml"), "id: STR_RIFLE\n")
	_, err := ruleset.LoadCatalog(root)
	assert.Error(t, err)
}

func TestLoadCatalog_RejectsMalformedYAML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "regions", "bad.yaml"), "id: [unterminated\n")
	_, err := ruleset.LoadCatalog(root)
	assert.Error(t, err)
}

func TestLoadRegions_MissingDirectory(t *testing.T) {
	regions, err := ruleset.LoadRegions(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, regions)
}
