// SPDX-License-Identifier: MIT
// Package: necklace
//
// types.go — value types shared by the enumerators and the ResultSet.
//
// Contract:
//   - Sequence is a plain []int; the enumerators only ever emit fresh slices.
//   - Key is a compact, hashable encoding of a Sequence (map-friendly).
//   - Mode selects the value domain: Binary ({0,1}) or General (any v ≥ 0).

package necklace

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// SafeLength is the largest necklace length the boundary layer accepts
// without asking the operator for confirmation. The core itself never
// refuses larger lengths.
const SafeLength = 50

// Sequence is an ordered list of pearl values around a necklace,
// indexed 0..L-1. Index L-1 is followed by index 0.
type Sequence []int

// Key is a hashable encoding of a Sequence: each value is written as an
// unsigned varint, so two keys are equal iff the sequences are equal
// value-for-value.
type Key string

// Key returns the hashable encoding of s.
// Complexity: O(L) time, O(L) space.
func (s Sequence) Key() Key {
	buf := make([]byte, 0, len(s)+1)
	for _, v := range s {
		buf = binary.AppendUvarint(buf, uint64(v))
	}

	return Key(buf)
}

// String renders s as comma-joined values, e.g. "1,1,0,0".
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// Sum returns the total of all pearl values.
func (s Sequence) Sum() int {
	total := 0
	for _, v := range s {
		total += v
	}

	return total
}

// Clone returns an independent copy of s (nil stays nil).
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}

// Mode selects the value domain of an enumeration.
type Mode int

const (
	// ModeBinary restricts every pearl to {0,1}; the sum is the number of ones.
	ModeBinary Mode = iota
	// ModeGeneral allows any non-negative pearl value (weak compositions of P).
	ModeGeneral
)

// String returns "binary" or "general" (or "mode(N)" for unknown values).
func (m Mode) String() string {
	switch m {
	case ModeBinary:
		return "binary"
	case ModeGeneral:
		return "general"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode is the inverse of Mode.String for the two known modes.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "binary":
		return ModeBinary, nil
	case "general":
		return ModeGeneral, nil
	default:
		return 0, wrapf(methodParseMode, "%q: %w", name, ErrUnknownMode)
	}
}

// Params records the inputs of one enumeration call.
//   - Length   — L, number of pearls (≥ 0).
//   - Sum      — P, required total of all pearls (≥ 0).
//   - MaxZeros — M, circular zero runs of length ≥ M are forbidden (≥ 1).
type Params struct {
	Length   int
	Sum      int
	MaxZeros int
}

// Stats counts what the search did. It is informational only; the set of
// accepted classes never depends on it.
type Stats struct {
	Leaves      int // complete sequences reached
	Pruned      int // partial prefixes abandoned
	RunRejected int // leaves rejected by the zero-run constraint
	Duplicates  int // leaves whose class was already present
	Accepted    int // distinct classes added to the ResultSet
}

// Reason tells a WithOnReject hook why a complete sequence was dropped.
type Reason int

const (
	// RejectSum marks a leaf whose total differs from P.
	RejectSum Reason = iota
	// RejectZeroRun marks a leaf containing a forbidden circular zero run.
	RejectZeroRun
	// RejectDuplicate marks a leaf whose canonical form was already collected.
	RejectDuplicate
)

// String names the reason for logs.
func (r Reason) String() string {
	switch r {
	case RejectSum:
		return "sum"
	case RejectZeroRun:
		return "zero-run"
	case RejectDuplicate:
		return "duplicate"
	default:
		return "reason(" + strconv.Itoa(int(r)) + ")"
	}
}
