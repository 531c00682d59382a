// SPDX-License-Identifier: MIT
//
// Command necklaces enumerates constrained necklaces from the command line.
//
//	necklaces enumerate -l 6 -p 3 -m 2
//	necklaces enumerate -l 4 -p 2 -m 4 --mode general --format json
//	necklaces canon "0,1,1,0" -m 2
//	necklaces count -l 10 -p 4
//	necklaces batch --config jobs.yaml
//
// Logging goes to stderr through klog; raise -v to 1 for per-run search
// statistics and to 2 for every accepted class.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/plan-systems/klog"
)

type cli struct {
	Verbosity int `short:"v" help:"klog verbosity level."`

	Enumerate enumerateCmd `cmd:"" help:"List necklace classes for L, P and M."`
	Canon     canonCmd     `cmd:"" help:"Show the canonical rotation of one sequence."`
	Count     countCmd     `cmd:"" help:"Count classes and raw search space without a zero-run limit."`
	Batch     batchCmd     `cmd:"" help:"Run enumerate jobs listed in a YAML file."`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "necklaces:", err)
		os.Exit(1)
	}
}

// run parses args and executes the selected command against in and out.
func run(args []string, in io.Reader, out io.Writer, opts ...kong.Option) error {
	var c cli
	opts = append([]kong.Option{
		kong.Name("necklaces"),
		kong.Description("Enumerate necklaces of length L and sum P with no circular run of M zeros."),
		kong.UsageOnError(),
		kong.Writers(out, os.Stderr),
	}, opts...)

	parser, err := kong.New(&c, opts...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	setupLogging(c.Verbosity)
	defer klog.Flush()

	return ctx.Run(&env{in: bufio.NewReader(in), out: out})
}
