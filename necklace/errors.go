// SPDX-License-Identifier: MIT
// Package: necklace
//
// errors.go — sentinel errors for the necklace package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w at the failing call site (see wrapf).
//   • Feasible-but-empty inputs (e.g. binary P > L) are NOT errors: they
//     return an empty ResultSet and a nil error.
//   • Algorithms never panic; option constructors panic on nil hooks.

package necklace

import (
	"errors"
	"fmt"
)

// ErrNegativeLength indicates L < 0.
var ErrNegativeLength = errors.New("necklace: length must be non-negative")

// ErrNegativeSum indicates P < 0.
var ErrNegativeSum = errors.New("necklace: sum must be non-negative")

// ErrInvalidMaxZeros indicates M ≤ 0. A zero or negative run limit has no
// agreed meaning, so it is rejected instead of guessed.
var ErrInvalidMaxZeros = errors.New("necklace: max zero run must be ≥ 1")

// ErrUnknownMode indicates a Mode other than Binary or General.
var ErrUnknownMode = errors.New("necklace: unknown mode")

// Method tags used as error prefixes.
const (
	methodEnumerate = "Enumerate"
	methodBinary    = "Binary"
	methodGeneral   = "General"
	methodParseMode = "ParseMode"
)

// wrapf prefixes a formatted message with the method name. The format
// must carry exactly one %w so the sentinel survives errors.Is.
func wrapf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}
