// SPDX-License-Identifier: MIT

package necklace

// Compare orders two sequences lexicographically, index 0 first.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
//
// Enumerators only compare equal-length sequences. For unequal lengths the
// common prefix decides first, then the shorter sequence sorts lower.
// Time Complexity: O(min(len(a), len(b))).
func Compare(a, b Sequence) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] > b[i] {
			return 1
		} else if a[i] < b[i] {
			return -1
		}
	}

	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}

	return 0
}

// Equal reports value-for-value equality.
func Equal(a, b Sequence) bool {
	return len(a) == len(b) && Compare(a, b) == 0
}
