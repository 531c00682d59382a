// SPDX-License-Identifier: MIT
// Package: necklace
//
// binary.go — BinaryEnumerator.
//
// Every pearl is 0 or 1, so the sum equals the number of ones: a valid
// necklace has exactly P ones and L-P zeros. P > L is infeasible and
// returns an empty ResultSet without searching.

package necklace

// Binary enumerates the rotation classes of length-L {0,1} sequences with
// exactly `sum` ones and no circular run of ≥ maxZeros zeros.
//
// Algorithm (depth-first, 1 tried before 0):
//  1. At a prefix of length k < L with partial sum S, prune when
//     S + (L-k) < P (cannot reach P) or S > P (already over).
//  2. Prune a 0 that would close a trailing zero run of length ≥ M.
//  3. At k == L run the leaf pipeline (sum check, run check, canonicalize).
//
// Complexity: O(C(L,P) · L²) in the worst case; exponential in L.
//
// Errors: ErrNegativeLength, ErrNegativeSum, ErrInvalidMaxZeros.
func Binary(length, sum, maxZeros int, opts ...Option) (*ResultSet, error) {
	p := Params{Length: length, Sum: sum, MaxZeros: maxZeros}
	if err := validate(methodBinary, p); err != nil {
		return nil, err
	}

	s := newSearch(ModeBinary, p, opts)
	if sum > length {
		// Each pearl contributes at most 1.
		return s.rs, nil
	}
	s.binary(0, 0, 0)

	return s.rs, nil
}

// binary extends the prefix buf[:k]; total is its sum and zeros the length
// of its trailing zero run.
func (s *search) binary(k, total, zeros int) {
	n := len(s.buf)
	if k == n {
		s.leaf()
		return
	}
	if total+(n-k) < s.params.Sum || total > s.params.Sum {
		s.rs.stats.Pruned++
		return
	}

	s.buf[k] = 1
	s.binary(k+1, total+1, 0)

	s.buf[k] = 0
	if s.closesRun(zeros) {
		s.rs.stats.Pruned++
		return
	}
	s.binary(k+1, total, zeros+1)
}
