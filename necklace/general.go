// SPDX-License-Identifier: MIT
// Package: necklace
//
// general.go — GeneralEnumerator over weak compositions of P into L parts.

package necklace

// General enumerates the rotation classes of length-L non-negative integer
// sequences summing to `sum` with no circular run of ≥ maxZeros zeros.
//
// Algorithm (depth-first):
//  1. At a prefix of length k with partial sum S, slot k takes values
//     P-S down to 0 (no value can exceed the remaining budget).
//  2. The last slot takes only P-S, the single value that can reach P.
//  3. A 0 that would close a trailing zero run of length ≥ M is pruned.
//  4. At k == L run the leaf pipeline; the sum re-check always passes here.
//
// P = 0 yields only the all-zero sequence. For L ≥ 1 it is forbidden when
// M ≤ 2L (see HasZeroRun) and is the single result otherwise.
//
// Complexity: O(C(P+L-1, L-1) · L²); exponential in L.
//
// Errors: ErrNegativeLength, ErrNegativeSum, ErrInvalidMaxZeros.
func General(length, sum, maxZeros int, opts ...Option) (*ResultSet, error) {
	p := Params{Length: length, Sum: sum, MaxZeros: maxZeros}
	if err := validate(methodGeneral, p); err != nil {
		return nil, err
	}

	s := newSearch(ModeGeneral, p, opts)
	s.general(0, 0, 0)

	return s.rs, nil
}

// general extends the prefix buf[:k]; total is its sum and zeros the
// length of its trailing zero run.
func (s *search) general(k, total, zeros int) {
	n := len(s.buf)
	if k == n {
		s.leaf()
		return
	}

	remaining := s.params.Sum - total
	lowest := 0
	if k == n-1 {
		lowest = remaining
	}

	for v := remaining; v >= lowest; v-- {
		if v == 0 {
			if s.closesRun(zeros) {
				s.rs.stats.Pruned++
				continue
			}
			s.buf[k] = 0
			s.general(k+1, total, zeros+1)
			continue
		}
		s.buf[k] = v
		s.general(k+1, total+v, 0)
	}
}
