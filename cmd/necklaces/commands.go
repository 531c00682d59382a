// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/necklace/count"
	"github.com/katalvlaran/necklace/internal/notation"
	"github.com/katalvlaran/necklace/necklace"
	"github.com/katalvlaran/necklace/render"
)

type enumerateCmd struct {
	Length   int    `short:"l" required:"" help:"Number of pearls (L)."`
	Sum      int    `short:"p" required:"" help:"Sum of all pearls (P)."`
	MaxZeros int    `short:"m" required:"" help:"Forbidden circular run of zeros (M)."`
	Mode     string `default:"both" enum:"both,binary,general" help:"Which families to enumerate (${enum})."`
	Format   string `default:"text" enum:"text,json" help:"Output format (${enum})."`
	Yes      bool   `short:"y" help:"Skip the confirmation prompt for long necklaces."`
}

func (c *enumerateCmd) Run(e *env) error {
	modes, err := parseModes([]string{c.Mode})
	if err != nil {
		return err
	}
	j := job{
		Name:   "enumerate",
		Params: necklace.Params{Length: c.Length, Sum: c.Sum, MaxZeros: c.MaxZeros},
		Modes:  modes,
		Yes:    c.Yes,
	}

	ok, err := e.gate(j)
	if err != nil || !ok {
		return err
	}
	sets, err := e.enumerate(j)
	if err != nil {
		return err
	}

	if c.Format == "json" {
		return errors.Wrap(render.JSON(e.out, reports(sets)), "write output")
	}

	return e.writeText(sets)
}

type canonCmd struct {
	Sequence string `arg:"" help:"Sequence literal, e.g. 0,1,1,0 or \"[0 1 1 0]\"."`
	MaxZeros int    `short:"m" help:"Also test for a circular run of this many zeros (0 skips the test)."`
}

func (c *canonCmd) Run(e *env) error {
	s, err := notation.Parse(c.Sequence)
	if err != nil {
		return errors.Wrap(err, "parse sequence")
	}

	canon, key := necklace.Canonical(s)
	run, whole := necklace.LongestZeroRun(s)
	runText := fmt.Sprint(run)
	if whole {
		runText = fmt.Sprintf("%d (whole necklace, rejected for M ≤ %d)", run, 2*run)
	}

	lines := []string{
		"input:     " + notation.Format(s),
		"canonical: " + notation.Format(canon),
		fmt.Sprintf("offset:    %d", necklace.CanonicalOffset(s)),
		fmt.Sprintf("key:       %x", string(key)),
		"zero run:  " + runText,
	}
	if c.MaxZeros > 0 {
		lines = append(lines, fmt.Sprintf("forbidden: %t (M=%d)", necklace.HasZeroRun(s, c.MaxZeros), c.MaxZeros))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(e.out, line); err != nil {
			return errors.Wrap(err, "write output")
		}
	}

	return nil
}

type countCmd struct {
	Length int `short:"l" required:"" help:"Number of pearls (L)."`
	Sum    int `short:"p" required:"" help:"Sum of all pearls (P)."`
}

func (c *countCmd) Run(e *env) error {
	for _, mode := range []necklace.Mode{necklace.ModeBinary, necklace.ModeGeneral} {
		classes, err := count.Necklaces(mode, c.Length, c.Sum)
		if err != nil {
			return errors.Wrap(err, "count classes")
		}
		space, err := count.SearchSpace(mode, c.Length, c.Sum)
		if err != nil {
			return errors.Wrap(err, "count search space")
		}
		if _, err := fmt.Fprintf(e.out, "%-8s classes=%s search-space=%s\n", mode.String()+":", classes, space); err != nil {
			return errors.Wrap(err, "write output")
		}
	}

	return nil
}

type batchCmd struct {
	Config string `short:"c" required:"" type:"existingfile" help:"YAML file listing jobs."`
	Format string `default:"text" enum:"text,json" help:"Output format (${enum})."`
	Yes    bool   `short:"y" help:"Skip the confirmation prompt for every job."`
}

func (c *batchCmd) Run(e *env) error {
	jobs, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	var all []render.Report
	for _, j := range jobs {
		j.Yes = j.Yes || c.Yes
		ok, err := e.gate(j)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		sets, err := e.enumerate(j)
		if err != nil {
			return err
		}
		if c.Format == "json" {
			all = append(all, reports(sets)...)
			continue
		}

		p := j.Params
		if _, err := fmt.Fprintf(e.out, "== %s (L=%d P=%d M=%d)\n", j.Name, p.Length, p.Sum, p.MaxZeros); err != nil {
			return errors.Wrap(err, "write output")
		}
		if err := e.writeText(sets); err != nil {
			return err
		}
	}

	if c.Format == "json" {
		return errors.Wrap(render.JSON(e.out, all), "write output")
	}

	return nil
}
