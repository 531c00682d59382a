// Package necklace enumerates necklaces: cyclic sequences of L pearls whose
// values sum to P, reported once per rotation class.
//
// 🚀 What is a necklace here?
//
//	Two sequences are the same necklace when one is a rotation of the other:
//	  [1,1,0,0] ≡ [1,0,0,1] ≡ [0,0,1,1] ≡ [0,1,1,0]
//	Each class is represented by its lexicographically MAXIMAL rotation
//	(here [1,1,0,0]). Reflections are NOT identified.
//
// ✨ Key features:
//   - Binary mode: pearls in {0,1}, exactly P ones (P > L ⇒ empty result)
//   - General mode: any non-negative pearls (weak compositions of P into L parts)
//   - Circular zero-run constraint: runs of ≥ M zeros, wrapping from the last
//     pearl to the first, are forbidden in both modes
//   - Deterministic output: a ResultSet sorted in descending lexicographic order
//   - Search hooks (WithOnAccept / WithOnReject) and Stats for diagnostics
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/necklace/necklace"
//
//	rs, err := necklace.Binary(4, 2, 4) // L=4, P=2, M=4
//	if err != nil {
//	  // ErrNegativeLength / ErrNegativeSum / ErrInvalidMaxZeros
//	}
//	for _, s := range rs.Sequences() {
//	  fmt.Println(s) // "1,1,0,0" then "1,0,1,0"
//	}
//
// Performance:
//
//   - Binary:  up to C(L,P) leaves, O(L²) canonicalization per leaf
//   - General: up to C(P+L-1, L-1) leaves, O(L²) per leaf
//
// The search is exhaustive and synchronous; callers bound L and P
// (see SafeLength). Package count gives exact class counts without searching.
package necklace
