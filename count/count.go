// SPDX-License-Identifier: MIT
// Package: count
//
// count.go — closed-form class counts and search-space sizes.
//
// Burnside's lemma over the cyclic group C_L: a rotation whose cycles have
// length d fixes exactly the sequences made of L/d values repeated d times,
// which requires d | P. There are φ(d) such rotations, hence
//
//	N(L,P) = (1/L) · Σ_{d | gcd(L,P)} φ(d) · F(L/d, P/d)
//
// with F(n,k) = C(n,k) for binary pearls and C(k+n-1, n-1) for general ones.
// gcd(L,0) = L, so P = 0 sums over every divisor of L and yields 1.

package count

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/necklace/necklace"
)

// ErrNegativeParam indicates L < 0 or P < 0.
var ErrNegativeParam = errors.New("count: length and sum must be non-negative")

// Necklaces returns the number of rotation classes of length-L sequences
// summing to P in the given mode, ignoring the zero-run constraint.
//
// Conventions match the enumerators: L = 0 counts the empty necklace iff
// P = 0; binary with P > L counts 0.
//
// Complexity: O(√gcd(L,P) + d(gcd)·binomial) big-int operations.
func Necklaces(mode necklace.Mode, length, sum int) (*big.Int, error) {
	if err := validate("Necklaces", mode, length, sum); err != nil {
		return nil, err
	}
	if length == 0 {
		return boolInt(sum == 0), nil
	}
	if mode == necklace.ModeBinary && sum > length {
		return new(big.Int), nil
	}

	g := gcd(length, sum)
	total := new(big.Int)
	term := new(big.Int)
	for d := 1; d <= g; d++ {
		if g%d != 0 {
			continue
		}
		fixed(term, mode, length/d, sum/d)
		term.Mul(term, big.NewInt(int64(phi(d))))
		total.Add(total, term)
	}

	return total.Quo(total, big.NewInt(int64(length))), nil
}

// SearchSpace returns the number of ordered sequences (before rotation
// deduplication and the zero-run constraint): C(L,P) for binary pearls,
// C(P+L-1, L-1) for general pearls.
func SearchSpace(mode necklace.Mode, length, sum int) (*big.Int, error) {
	if err := validate("SearchSpace", mode, length, sum); err != nil {
		return nil, err
	}
	if length == 0 {
		return boolInt(sum == 0), nil
	}

	return fixed(new(big.Int), mode, length, sum), nil
}

// fixed stores F(n,k) in z and returns z.
func fixed(z *big.Int, mode necklace.Mode, n, k int) *big.Int {
	if mode == necklace.ModeBinary {
		return binomial(z, n, k)
	}

	return binomial(z, k+n-1, n-1)
}

// binomial stores C(n,k) in z, with C(n,k) = 0 outside 0 ≤ k ≤ n.
func binomial(z *big.Int, n, k int) *big.Int {
	if k < 0 || k > n {
		return z.SetInt64(0)
	}

	return z.Binomial(int64(n), int64(k))
}

func validate(method string, mode necklace.Mode, length, sum int) error {
	if mode != necklace.ModeBinary && mode != necklace.ModeGeneral {
		return fmt.Errorf("count: %s: %v: %w", method, mode, necklace.ErrUnknownMode)
	}
	if length < 0 || sum < 0 {
		return fmt.Errorf("count: %s: length=%d sum=%d: %w", method, length, sum, ErrNegativeParam)
	}

	return nil
}

// phi is Euler's totient by trial division.
func phi(n int) int {
	result := n
	for p := 2; p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		for n%p == 0 {
			n /= p
		}
		result -= result / p
	}
	if n > 1 {
		result -= result / n
	}

	return result
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func boolInt(ok bool) *big.Int {
	if ok {
		return big.NewInt(1)
	}

	return new(big.Int)
}
