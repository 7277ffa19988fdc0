package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/geoscape/internal/game/inventory"
)

func TestContainer_AddAccumulates(t *testing.T) {
	c := inventory.NewContainer()
	c.Add("STR_ALIEN_ALLOYS", 3)
	c.Add("STR_ALIEN_ALLOYS", 2)
	assert.Equal(t, 5, c.Quantity("STR_ALIEN_ALLOYS"))
	assert.Equal(t, 5, c.Total())
}

func TestContainer_AddEmptyIDIgnored(t *testing.T) {
	c := inventory.NewContainer()
	c.Add("", 10)
	assert.Equal(t, 0, c.Total())
	assert.Empty(t, c.Contents())
}

func TestContainer_AddNegative(t *testing.T) {
	c := inventory.NewContainer()
	c.Add("STR_RIFLE", 4)
	c.Add("STR_RIFLE", -1)
	assert.Equal(t, 3, c.Quantity("STR_RIFLE"))
}

func TestContainer_AddZeroCreatesNothing(t *testing.T) {
	c := inventory.NewContainer()
	c.Add("STR_RIFLE", 0)
	assert.Empty(t, c.Types())
}

func TestContainer_RemoveClamps(t *testing.T) {
	c := inventory.NewContainer()
	c.Add("STR_RIFLE", 4)
	c.Remove("STR_RIFLE", 1)
	assert.Equal(t, 3, c.Quantity("STR_RIFLE"))
	c.Remove("STR_RIFLE", 10)
	assert.Equal(t, 0, c.Quantity("STR_RIFLE"))
	assert.Empty(t, c.Types())
	c.Remove("STR_UNKNOWN", 1)
	assert.Equal(t, 0, c.Total())
}

func TestContainer_ContentsIsCopy(t *testing.T) {
	c := inventory.NewContainer()
	c.Add("STR_RIFLE", 1)
	snap := c.Contents()
	snap["STR_RIFLE"] = 99
	assert.Equal(t, 1, c.Quantity("STR_RIFLE"))
}

func TestContainer_TypesSorted(t *testing.T) {
	c := inventory.NewContainer()
	c.Add("b", 1)
	c.Add("c", 1)
	c.Add("a", 1)
	assert.Equal(t, []string{"a", "b", "c"}, c.Types())
}

func TestProperty_Container_TotalIsSumOfAdds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := inventory.NewContainer()
		ids := []string{"a", "b", "c"}
		sum := 0
		n := rapid.IntRange(0, 30).Draw(rt, "n")
		for i := 0; i < n; i++ {
			id := rapid.SampledFrom(ids).Draw(rt, "id")
			q := rapid.IntRange(0, 50).Draw(rt, "qty")
			c.Add(id, q)
			sum += q
		}
		assert.Equal(rt, sum, c.Total())
	})
}
