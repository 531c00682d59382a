// SPDX-License-Identifier: MIT
// Package: render
//
// render.go — presentation of enumeration results.
//
// Contract:
//   • Consumes only raw pearl values; the core exposes nothing else.
//   • A pearl is High when it equals the necklace maximum and is > 0,
//     Zero when it is 0, and Value otherwise.
//   • Text output is deterministic: same input, same bytes.

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/necklace/necklace"
)

// CellKind labels one pearl for display.
type CellKind int

const (
	// Zero is an empty pearl.
	Zero CellKind = iota
	// Value is a non-zero pearl below the necklace maximum.
	Value
	// High is a pearl holding the necklace maximum (> 0).
	High
)

// String names the kind, e.g. for CSS-like class suffixes.
func (k CellKind) String() string {
	switch k {
	case Zero:
		return "zero"
	case Value:
		return "value"
	case High:
		return "high"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Cell is one labelled pearl.
type Cell struct {
	Value int
	Kind  CellKind
}

// Classify labels every pearl of s.
// Complexity: O(L).
func Classify(s necklace.Sequence) []Cell {
	hi := 0
	for _, v := range s {
		if v > hi {
			hi = v
		}
	}

	cells := make([]Cell, len(s))
	for i, v := range s {
		kind := Value
		switch {
		case v == 0:
			kind = Zero
		case v == hi:
			kind = High
		}
		cells[i] = Cell{Value: v, Kind: kind}
	}

	return cells
}

// NoResults is printed in place of rows for an empty list.
const NoResults = "no results"

// Text writes a header "<title> (<count>)" followed by one indented row per
// sequence. High pearls are bracketed, zeros are shown as "·"; all cells are
// padded to the widest value in the list.
//
//	Binary (2)
//	  [1] [1]  ·   ·
//	  [1]  ·  [1]  ·
func Text(w io.Writer, title string, seqs []necklace.Sequence) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d)\n", title, len(seqs))

	if len(seqs) == 0 {
		b.WriteString("  " + NoResults + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	width := 1
	for _, s := range seqs {
		for _, v := range s {
			if n := len(strconv.Itoa(v)); n > width {
				width = n
			}
		}
	}

	for _, s := range seqs {
		cells := Classify(s)
		tokens := make([]string, len(cells))
		for i, c := range cells {
			tokens[i] = cellToken(c, width)
		}
		b.WriteString(strings.TrimRight("  "+strings.Join(tokens, " "), " "))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// cellToken renders one cell as width+2 runes.
func cellToken(c Cell, width int) string {
	switch c.Kind {
	case Zero:
		return " " + strings.Repeat(" ", width-1) + "·" + " "
	case High:
		return "[" + fmt.Sprintf("%*d", width, c.Value) + "]"
	default:
		return " " + fmt.Sprintf("%*d", width, c.Value) + " "
	}
}

// Report is the machine-readable form of one ResultSet.
type Report struct {
	Mode      string              `json:"mode"`
	Length    int                 `json:"length"`
	Sum       int                 `json:"sum"`
	MaxZeros  int                 `json:"max_zeros"`
	Count     int                 `json:"count"`
	Necklaces []necklace.Sequence `json:"necklaces"`
}

// NewReport snapshots rs.
func NewReport(rs *necklace.ResultSet) Report {
	p := rs.Params()

	return Report{
		Mode:      rs.Mode().String(),
		Length:    p.Length,
		Sum:       p.Sum,
		MaxZeros:  p.MaxZeros,
		Count:     rs.Len(),
		Necklaces: rs.Sequences(),
	}
}

// JSON writes reports as an indented JSON array.
func JSON(w io.Writer, reports []Report) error {
	if reports == nil {
		reports = []Report{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(reports)
}
