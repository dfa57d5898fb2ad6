// Package alias maps free-text names of Russian legal instruments to
// canonical law identifiers. An Index is built once from an alias table
// and is read-only afterwards; a Resolver scores candidate names against
// the index with a partial-match similarity measure.
package alias

import (
	"sort"
	"strings"
)

// LawID is the canonical identifier of a legal instrument.
type LawID int64

// entry is one inverted alias record. Aliases are stored lower-cased.
type entry struct {
	alias string
	id    LawID
}

// Index is the inverted alias table: lower-cased alias -> canonical law id.
//
// Iteration order is fixed so that resolver tie-breaks are reproducible:
// law ids ascending, then each law's aliases in their listed order. A
// duplicate alias (case-insensitive) keeps its first position but takes the
// id of the last law that listed it.
type Index struct {
	entries []entry
	byAlias map[string]int // lower-cased alias -> position in entries
}

// NewIndex builds an index from a canonical-id -> aliases table.
func NewIndex(table map[LawID][]string) *Index {
	ids := make([]LawID, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	idx := &Index{byAlias: make(map[string]int)}
	for _, id := range ids {
		for _, a := range table[id] {
			key := strings.ToLower(a)
			if key == "" {
				continue
			}
			if pos, seen := idx.byAlias[key]; seen {
				idx.entries[pos].id = id
				continue
			}
			idx.byAlias[key] = len(idx.entries)
			idx.entries = append(idx.entries, entry{alias: key, id: id})
		}
	}
	return idx
}

// Len returns the number of distinct aliases in the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Lookup returns the id for an exact alias (case-insensitive).
func (idx *Index) Lookup(a string) (LawID, bool) {
	pos, ok := idx.byAlias[strings.ToLower(a)]
	if !ok {
		return 0, false
	}
	return idx.entries[pos].id, true
}
