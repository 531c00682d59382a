// SPDX-License-Identifier: MIT
// Package: necklace
//
// canonical.go — rotation canonical form.
//
// The representative of a necklace class is its lexicographically MAXIMAL
// rotation. Rotations are scanned at offsets 0..L-1 and only a strictly
// greater candidate replaces the current best, so the earliest maximal
// offset wins when several rotations tie (periodic necklaces).

package necklace

// Rotate returns a new sequence r with r[i] = s[(i+k) mod L].
// k may be negative or ≥ L.
// Complexity: O(L).
func Rotate(s Sequence, k int) Sequence {
	n := len(s)
	out := make(Sequence, n)
	if n == 0 {
		return out
	}
	k %= n
	if k < 0 {
		k += n
	}
	for i := 0; i < n; i++ {
		out[i] = s[(i+k)%n]
	}

	return out
}

// CanonicalOffset returns the first rotation offset producing the maximal
// rotation of s. An empty sequence yields 0.
//
// Steps:
//  1. best = 0.
//  2. For k = 1..L-1 compare rotation k against rotation best in place
//     (no slice allocation per candidate).
//  3. Replace best only on a strictly greater rotation.
//
// Complexity: O(L²) time, O(1) space.
func CanonicalOffset(s Sequence) int {
	n := len(s)
	best := 0
	for k := 1; k < n; k++ {
		if compareRotations(s, k, best) > 0 {
			best = k
		}
	}

	return best
}

// Canonical returns the maximal rotation of s as a fresh slice together
// with its Key.
// Complexity: O(L²) time, O(L) space.
func Canonical(s Sequence) (Sequence, Key) {
	canon := Rotate(s, CanonicalOffset(s))

	return canon, canon.Key()
}

// IsCanonical reports whether s already equals its maximal rotation.
// Complexity: O(L²).
func IsCanonical(s Sequence) bool {
	for k := 1; k < len(s); k++ {
		if compareRotations(s, k, 0) > 0 {
			return false
		}
	}

	return true
}

// compareRotations compares rotation i of s against rotation j of s
// lexicographically without materializing either one.
func compareRotations(s Sequence, i, j int) int {
	n := len(s)
	for t := 0; t < n; t++ {
		a, b := s[(i+t)%n], s[(j+t)%n]
		if a > b {
			return 1
		} else if a < b {
			return -1
		}
	}

	return 0
}
