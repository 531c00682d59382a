// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"strconv"
	"sync"

	"github.com/plan-systems/klog"
)

var (
	klogOnce  sync.Once
	klogFlags *flag.FlagSet
)

// setupLogging routes klog to stderr at the requested verbosity. klog flags
// live on a private FlagSet so they never clash with the CLI parser.
func setupLogging(verbosity int) {
	klogOnce.Do(func() {
		klogFlags = flag.NewFlagSet("klog", flag.ContinueOnError)
		klog.InitFlags(klogFlags)
		klogFlags.Set("logtostderr", "true")
		klog.SetFormatter(&klog.FmtConstWidth{
			FileNameCharWidth: 16,
			UseColor:          true,
		})
	})
	klogFlags.Set("v", strconv.Itoa(verbosity))
}
