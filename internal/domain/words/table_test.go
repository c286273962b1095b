package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tableOf(ws ...string) *Table {
	t := NewTable()
	for _, w := range ws {
		t.Add(w)
	}
	return t
}

func TestTable_Counts(t *testing.T) {
	tbl := tableOf("the", "fox", "the", "dog", "the")
	assert.Equal(t, 3, tbl.Count("the"))
	assert.Equal(t, 1, tbl.Count("fox"))
	assert.Equal(t, 0, tbl.Count("cat"))
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, 5, tbl.Total())
}

func TestTable_EntriesFirstSeenOrder(t *testing.T) {
	tbl := tableOf("b", "a", "b", "c")
	assert.Equal(t, []Entry{{"b", 2}, {"a", 1}, {"c", 1}}, tbl.Entries())
}

func TestTable_EntriesIsCopy(t *testing.T) {
	tbl := tableOf("a")
	e := tbl.Entries()
	e[0].Count = 99
	assert.Equal(t, 1, tbl.Count("a"))
}

func TestTable_TopDescending(t *testing.T) {
	tbl := tableOf("a", "b", "b", "c", "c", "c", "d", "d", "d", "d")
	assert.Equal(t, []Entry{{"d", 4}, {"c", 3}, {"b", 2}}, tbl.Top(3))
}

func TestTable_TopTiesKeepFirstSeen(t *testing.T) {
	tbl := tableOf("x", "y", "z", "w", "z", "y", "x", "w")
	top := tbl.Top(3)
	assert.Equal(t, []Entry{{"x", 2}, {"y", 2}, {"z", 2}}, top)
}

func TestTable_TopFewerThanK(t *testing.T) {
	tbl := tableOf("a", "b", "a")
	assert.Equal(t, []Entry{{"a", 2}, {"b", 1}}, tbl.Top(3))
}

func TestTable_TopEmpty(t *testing.T) {
	top := NewTable().Top(3)
	assert.NotNil(t, top)
	assert.Empty(t, top)
	assert.Empty(t, tableOf("a").Top(0))
	assert.Empty(t, tableOf("a").Top(-1))
}
