// Command steadylog writes steadylog records from the shell: single records
// with emit, whole streams with pipe.
package main

import (
	"os"

	"pkt.systems/steadylog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		diag := steadylog.New(steadylog.NullClock{}, steadylog.NewConsoleSink(os.Stderr))
		diag.LogErr("steadylog: " + err.Error())
		os.Exit(1)
	}
}
