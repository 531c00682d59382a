// SPDX-License-Identifier: MIT
// Package: necklace
//
// resultset.go — ordered, deduplicated collection of canonical forms.
//
// Design:
//   • Membership: map[Key]struct{} (O(1) duplicate check per leaf).
//   • Order: red-black tree keyed by Sequence with a descending Comparator,
//     so in-order traversal already yields the presentation order.
//   • Every stored Sequence is canonical and owned by the set; accessors
//     hand out copies.

package necklace

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// ResultSet holds one canonical representative per necklace class, sorted
// in descending lexicographic order. A ResultSet is built fresh by each
// enumeration call and is not safe for concurrent mutation.
type ResultSet struct {
	mode   Mode
	params Params
	stats  Stats

	seen map[Key]struct{}
	tree *redblacktree.Tree
}

// NewResultSet returns an empty set tagged with the given mode and params.
func NewResultSet(mode Mode, params Params) *ResultSet {
	return &ResultSet{
		mode:   mode,
		params: params,
		seen:   make(map[Key]struct{}),
		tree:   redblacktree.NewWith(descending),
	}
}

// descending orders tree keys from the lexicographically largest down.
func descending(a, b interface{}) int {
	return Compare(b.(Sequence), a.(Sequence))
}

// Add canonicalizes s and inserts it. It reports true if the class was new.
// Complexity: O(L²) canonicalization + O(log N) insert.
func (rs *ResultSet) Add(s Sequence) bool {
	canon, key := Canonical(s)

	return rs.add(canon, key)
}

// add inserts an already canonical sequence under its key.
func (rs *ResultSet) add(canon Sequence, key Key) bool {
	if _, dup := rs.seen[key]; dup {
		return false
	}
	rs.seen[key] = struct{}{}
	rs.tree.Put(canon, struct{}{})

	return true
}

// Contains reports whether the class of s (any rotation) is present.
func (rs *ResultSet) Contains(s Sequence) bool {
	_, key := Canonical(s)
	_, ok := rs.seen[key]

	return ok
}

// Len returns the number of distinct classes.
func (rs *ResultSet) Len() int {
	return rs.tree.Size()
}

// Sequences returns copies of all canonical forms in descending order.
// An empty set yields an empty, non-nil slice.
func (rs *ResultSet) Sequences() []Sequence {
	out := make([]Sequence, 0, rs.tree.Size())
	rs.Each(func(_ int, s Sequence) bool {
		out = append(out, s.Clone())
		return true
	})

	return out
}

// Each calls fn for every canonical form in descending order, passing its
// position. Returning false stops the walk. fn must not modify s.
func (rs *ResultSet) Each(fn func(i int, s Sequence) bool) {
	it := rs.tree.Iterator()
	for i := 0; it.Next(); i++ {
		if !fn(i, it.Key().(Sequence)) {
			return
		}
	}
}

// Mode returns the value domain this set was built for.
func (rs *ResultSet) Mode() Mode { return rs.mode }

// Params returns the (L, P, M) inputs this set was built for.
func (rs *ResultSet) Params() Params { return rs.params }

// Stats returns the search counters recorded while building the set.
func (rs *ResultSet) Stats() Stats { return rs.stats }
