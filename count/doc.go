// Package count gives exact necklace class counts without enumerating.
//
// Necklaces applies Burnside's lemma to the rotation group; SearchSpace
// reports how many ordered sequences a brute-force enumerator would visit
// at most. Both ignore the circular zero-run constraint, so they are an
// upper bound for necklace.Enumerate and equal to it whenever P ≥ 1 and
// M ≥ L (no non-zero necklace has a circular zero run of length L).
//
//	n, _ := count.Necklaces(necklace.ModeBinary, 6, 3) // 4
//	s, _ := count.SearchSpace(necklace.ModeGeneral, 4, 4) // C(7,3) = 35
package count
