// SPDX-License-Identifier: MIT
// Package: necklace
//
// enumerate.go — public entry points, parameter validation and the leaf
// pipeline shared by both enumerators.
//
// Pipeline per complete sequence (leaf):
//  1. re-check sum == P,
//  2. reject circular zero runs ≥ M (HasZeroRun),
//  3. canonicalize (maximal rotation) and insert if its Key is new.
//
// Determinism: equal inputs yield identical ordered results; the branch
// order of the search only affects Stats, never the returned classes.

package necklace

// Enumerate validates (length, sum, maxZeros) and routes to Binary or
// General according to mode.
//
// Errors: ErrUnknownMode, ErrNegativeLength, ErrNegativeSum,
// ErrInvalidMaxZeros (all wrapped; use errors.Is).
func Enumerate(mode Mode, length, sum, maxZeros int, opts ...Option) (*ResultSet, error) {
	switch mode {
	case ModeBinary:
		return Binary(length, sum, maxZeros, opts...)
	case ModeGeneral:
		return General(length, sum, maxZeros, opts...)
	default:
		return nil, wrapf(methodEnumerate, "%v: %w", mode, ErrUnknownMode)
	}
}

// validate enforces L ≥ 0, P ≥ 0, M ≥ 1, in that priority.
func validate(method string, p Params) error {
	if p.Length < 0 {
		return wrapf(method, "length=%d: %w", p.Length, ErrNegativeLength)
	}
	if p.Sum < 0 {
		return wrapf(method, "sum=%d: %w", p.Sum, ErrNegativeSum)
	}
	if p.MaxZeros < 1 {
		return wrapf(method, "maxZeros=%d: %w", p.MaxZeros, ErrInvalidMaxZeros)
	}

	return nil
}

// search carries the state of one backtracking run. buf is the single
// scratch sequence rewritten in place at every depth.
type search struct {
	params Params
	cfg    config
	rs     *ResultSet
	buf    Sequence
}

func newSearch(mode Mode, p Params, opts []Option) *search {
	return &search{
		params: p,
		cfg:    newConfig(opts...),
		rs:     NewResultSet(mode, p),
		buf:    make(Sequence, p.Length),
	}
}

// leaf runs the acceptance pipeline on the completed buffer.
func (s *search) leaf() {
	st := &s.rs.stats
	st.Leaves++

	if s.buf.Sum() != s.params.Sum {
		s.cfg.onReject(s.buf, RejectSum)
		return
	}
	if HasZeroRun(s.buf, s.params.MaxZeros) {
		st.RunRejected++
		s.cfg.onReject(s.buf, RejectZeroRun)
		return
	}

	canon, key := Canonical(s.buf)
	if !s.rs.add(canon, key) {
		st.Duplicates++
		s.cfg.onReject(s.buf, RejectDuplicate)
		return
	}
	st.Accepted++
	s.cfg.onAccept(canon)
}

// closesRun reports whether appending one more zero to a prefix ending in
// `zeros` trailing zeros reaches the forbidden run length. Such a prefix
// can never complete into an acceptable necklace.
func (s *search) closesRun(zeros int) bool {
	return zeros+1 >= s.params.MaxZeros
}
