// Package necklace is a toolkit for listing cyclic integer sequences
// ("necklaces") under rotation, with a fixed length, a fixed sum and a
// ban on long circular runs of zeros.
//
// 🚀 What is in the box?
//
//	A small, deterministic, single-threaded library plus a CLI:
//		• Canonical forms: maximal rotation, offset, hashable key
//		• Zero-run checks: circular scan with wrap-around
//		• Enumeration: binary pearls {0,1} and general pearls {0..P}
//		• Counting: Burnside totals and raw search-space sizes (math/big)
//		• Rendering: aligned text blocks and JSON reports
//
// ✨ Why use it?
//
//   - Exact – every rotation class appears once, in its maximal form
//   - Pruned – budget, overshoot and zero-run pruning keep the DFS tight
//   - Observable – OnAccept/OnReject hooks and per-run Stats
//   - Scriptable – the necklaces CLI runs single jobs or YAML batches
//
// Everything is organized under these subpackages:
//
//	necklace/            — Sequence, canonical rotation, zero runs, Enumerate/Binary/General, ResultSet
//	count/               — class counts via Burnside's lemma, search-space sizes
//	render/              — Classify, Text and JSON presentation
//	internal/notation/   — "1,1,0,0" / "[1 1 0 0]" literal parser
//	cmd/necklaces/       — command-line front end (enumerate, canon, count, batch)
//
// Quick ASCII example (L=4, P=2, M=4, binary):
//
//	  1 ─ 1        1 ─ 0
//	  │   │        │   │
//	  0 ─ 0        0 ─ 1
//
//	two rotation classes: [1,1,0,0] and [1,0,1,0].
//
//	go get github.com/katalvlaran/necklace
package necklace
