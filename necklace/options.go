// SPDX-License-Identifier: MIT
// Package: necklace
//
// options.go — functional options for the enumerators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on nil hooks; enumerators never panic.
//   • Hooks observe the search, they cannot change which classes are kept.

package necklace

// Option customizes an enumeration call.
type Option func(*config)

// config is resolved once per call and passed by value.
type config struct {
	// onAccept is invoked with each newly collected canonical form.
	onAccept func(Sequence)
	// onReject is invoked with each dropped leaf and the reason.
	onReject func(Sequence, Reason)
}

// WithOnAccept registers a hook receiving every new canonical form, in
// discovery order. The slice is owned by the ResultSet; do not modify it.
// Panics on nil.
func WithOnAccept(fn func(Sequence)) Option {
	if fn == nil {
		panic("necklace: WithOnAccept(nil)")
	}
	return func(c *config) {
		c.onAccept = fn
	}
}

// WithOnReject registers a hook receiving every dropped leaf. The slice is
// a scratch buffer reused by the search; copy it to retain it.
// Panics on nil.
func WithOnReject(fn func(Sequence, Reason)) Option {
	if fn == nil {
		panic("necklace: WithOnReject(nil)")
	}
	return func(c *config) {
		c.onReject = fn
	}
}

// newConfig applies opts in order over no-op defaults (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		onAccept: func(Sequence) {},
		onReject: func(Sequence, Reason) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
