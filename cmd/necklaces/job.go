// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/necklace/necklace"
	"github.com/katalvlaran/necklace/render"
)

// job is one enumeration request, from flags or from a batch file.
type job struct {
	Name   string
	Params necklace.Params
	Modes  []necklace.Mode
	Yes    bool
}

// parseModes expands "both" and validates the rest via necklace.ParseMode.
func parseModes(names []string) ([]necklace.Mode, error) {
	if len(names) == 0 {
		return []necklace.Mode{necklace.ModeBinary, necklace.ModeGeneral}, nil
	}

	var modes []necklace.Mode
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "both") {
			modes = append(modes, necklace.ModeBinary, necklace.ModeGeneral)
			continue
		}
		m, err := necklace.ParseMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}

	return modes, nil
}

// env carries the process streams into every command.
type env struct {
	in  io.Reader
	out io.Writer
}

// gate asks for confirmation when j exceeds necklace.SafeLength.
// A false result means the user declined and nothing should run.
func (e *env) gate(j job) (bool, error) {
	if j.Params.Length <= necklace.SafeLength || j.Yes {
		return true, nil
	}

	klog.Warningf("length %d exceeds safe length %d", j.Params.Length, necklace.SafeLength)
	prompt := fmt.Sprintf("Length %d is above %d and may take a very long time. Continue? [y/N] ",
		j.Params.Length, necklace.SafeLength)
	ok, err := confirm(e.in, e.out, prompt)
	if err != nil {
		return false, err
	}
	if !ok {
		klog.Infof("job %q cancelled at the confirmation prompt", j.Name)
		if _, err := fmt.Fprintln(e.out, "cancelled"); err != nil {
			return false, errors.Wrap(err, "write output")
		}
	}

	return ok, nil
}

// enumerate runs every mode of j and returns the result sets in mode order.
func (e *env) enumerate(j job) ([]*necklace.ResultSet, error) {
	p := j.Params
	sets := make([]*necklace.ResultSet, 0, len(j.Modes))
	for _, mode := range j.Modes {
		onAccept := necklace.WithOnAccept(func(s necklace.Sequence) {
			klog.V(2).Infof("%s: accepted %s", mode, s)
		})

		rs, err := necklace.Enumerate(mode, p.Length, p.Sum, p.MaxZeros, onAccept)
		if err != nil {
			return nil, errors.Wrapf(err, "job %q", j.Name)
		}

		st := rs.Stats()
		klog.V(1).Infof("%s L=%d P=%d M=%d: %d classes (leaves=%d pruned=%d run-rejected=%d duplicates=%d)",
			mode, p.Length, p.Sum, p.MaxZeros, rs.Len(), st.Leaves, st.Pruned, st.RunRejected, st.Duplicates)
		sets = append(sets, rs)
	}

	return sets, nil
}

// writeText prints one block per result set.
func (e *env) writeText(sets []*necklace.ResultSet) error {
	for _, rs := range sets {
		title := titleOf(rs.Mode())
		if err := render.Text(e.out, title, rs.Sequences()); err != nil {
			return errors.Wrap(err, "write output")
		}
	}

	return nil
}

func titleOf(m necklace.Mode) string {
	name := m.String()

	return strings.ToUpper(name[:1]) + name[1:] + " necklaces"
}

func reports(sets []*necklace.ResultSet) []render.Report {
	out := make([]render.Report, 0, len(sets))
	for _, rs := range sets {
		out = append(out, render.NewReport(rs))
	}

	return out
}
