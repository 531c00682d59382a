// SPDX-License-Identifier: MIT
// Package: necklace
//
// runs.go — circular zero-run detection.
//
// A necklace is read circularly: the pearl after index L-1 is index 0, so a
// run of zeros may wrap across the boundary. The scan reads the necklace
// followed by its first min(M-1, L) pearls, wrapping indices modulo L rather
// than building the extended slice, so M > L stays in bounds.
//
// Any run that is not the whole necklace is shorter than L and is seen in
// full. An all-zero necklace reads as a run of L + min(M-1, L) zeros, so it
// is forbidden exactly when M ≤ 2L.

package necklace

// HasZeroRun reports whether s, read circularly, contains a run of at
// least m consecutive zeros.
//
// Steps:
//  1. Treat m ≤ 0 as m = 1: any zero at all is forbidden.
//  2. Walk positions 0..L+min(m-1, L)-1, reading s[i mod L].
//  3. Count consecutive zeros; report true as soon as the count reaches m.
//
// An empty sequence has no zeros and is never forbidden.
// Complexity: O(L) time, O(1) space.
func HasZeroRun(s Sequence, m int) bool {
	n := len(s)
	if n == 0 {
		return false
	}
	if m <= 0 {
		m = 1
	}

	wrap := m - 1
	if wrap > n {
		wrap = n
	}

	run := 0
	for i := 0; i < n+wrap; i++ {
		if s[i%n] != 0 {
			run = 0
			continue
		}
		run++
		if run >= m {
			return true
		}
	}

	return false
}

// LongestZeroRun returns the length of the longest circular run of zeros in
// s. If every pearl is zero (and L ≥ 1) whole is true and run equals L;
// HasZeroRun then reports a run for every m ≤ 2L.
// Complexity: O(L) time, O(1) space.
func LongestZeroRun(s Sequence) (run int, whole bool) {
	n := len(s)
	if n == 0 {
		return 0, false
	}

	// Start scanning just after a non-zero pearl so that a wrapping run is
	// counted in one piece.
	start := -1
	for i, v := range s {
		if v != 0 {
			start = i
			break
		}
	}
	if start < 0 {
		return n, true
	}

	cur := 0
	for k := 1; k <= n; k++ {
		if s[(start+k)%n] == 0 {
			cur++
			if cur > run {
				run = cur
			}
		} else {
			cur = 0
		}
	}

	return run, false
}
