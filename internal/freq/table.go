// Package freq builds word-frequency tables for chapters and whole books.
package freq

import "slices"

// Entry is a word and its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Table counts word occurrences. It remembers the order in which words were
// first seen so rankings break ties deterministically. A Table is read-only
// once Count returns it.
type Table struct {
	counts map[string]int
	order  []string
	total  int
}

// Count builds a Table from words.
func Count(words []string) *Table {
	t := &Table{counts: make(map[string]int)}
	for _, w := range words {
		if _, seen := t.counts[w]; !seen {
			t.order = append(t.order, w)
		}
		t.counts[w]++
		t.total++
	}
	return t
}

// Get returns the count for word, or 0.
func (t *Table) Get(word string) int {
	return t.counts[word]
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	return len(t.order)
}

// Total returns the number of words counted.
func (t *Table) Total() int {
	return t.total
}

// Words returns the distinct words in first-seen order.
func (t *Table) Words() []string {
	return slices.Clone(t.order)
}

// Map returns a copy of the counts.
func (t *Table) Map() map[string]int {
	m := make(map[string]int, len(t.counts))
	for w, c := range t.counts {
		m[w] = c
	}
	return m
}

// Ranked returns every entry by descending count. Equal counts keep
// first-seen order; there is no alphabetical tie-break.
func (t *Table) Ranked() []Entry {
	entries := make([]Entry, len(t.order))
	for i, w := range t.order {
		entries[i] = Entry{Word: w, Count: t.counts[w]}
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Count - a.Count
	})
	return entries
}

// Top returns the first n entries of Ranked. A non-positive n, or one
// larger than Len, returns all of them.
func (t *Table) Top(n int) []Entry {
	ranked := t.Ranked()
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
