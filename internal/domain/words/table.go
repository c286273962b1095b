package words

import "sort"

// Entry is one row of a frequency table.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Table maps lowercased words to occurrence counts for one scan.
// Rows keep the order in which words were first seen.
type Table struct {
	index   map[string]int // word -> position in entries
	entries []Entry
	total   int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Add counts one occurrence of word. A new word starts at 1.
func (t *Table) Add(word string) {
	t.total++
	if i, ok := t.index[word]; ok {
		t.entries[i].Count++
		return
	}
	t.index[word] = len(t.entries)
	t.entries = append(t.entries, Entry{Word: word, Count: 1})
}

// Count returns the occurrences of word, or 0 if it was never seen.
func (t *Table) Count(word string) int {
	if i, ok := t.index[word]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	return len(t.entries)
}

// Total returns the sum of all counts, i.e. the number of words matched.
func (t *Table) Total() int {
	return t.total
}

// Entries returns a copy of all rows in first-seen order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Top returns the k rows with the highest counts, highest first.
// Equal counts keep first-seen order. Fewer than k distinct words returns
// all of them; k <= 0 returns an empty slice.
func (t *Table) Top(k int) []Entry {
	if k <= 0 {
		return []Entry{}
	}
	sorted := t.Entries()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if k < len(sorted) {
		sorted = sorted[:k]
	}
	return sorted
}
