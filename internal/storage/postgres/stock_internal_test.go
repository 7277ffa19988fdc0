package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSortedRows(t *testing.T) {
	rows := sortedRows(map[string]int{"ELERIUM": 3, "": 9, "ALIEN_ALLOY": 0})
	assert.Equal(t, []stockRow{{"ALIEN_ALLOY", 0}, {"ELERIUM", 3}}, rows)
	assert.Empty(t, sortedRows(nil))
}

func TestPropertySortedRowsKeepsEveryNamedItem(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := rapid.MapOf(rapid.StringMatching(`[A-Z_]{0,8}`), rapid.IntRange(0, 1000)).Draw(t, "stock")
		rows := sortedRows(m)
		want := len(m)
		if _, ok := m[""]; ok {
			want--
		}
		if len(rows) != want {
			t.Fatalf("got %d rows, want %d", len(rows), want)
		}
		for i, r := range rows {
			if m[r.itemType] != r.n {
				t.Fatalf("row %q has %d, want %d", r.itemType, r.n, m[r.itemType])
			}
			if i > 0 && rows[i-1].itemType >= r.itemType {
				t.Fatalf("rows out of order at %d", i)
			}
		}
	})
}
