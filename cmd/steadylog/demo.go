package main

import (
	"strconv"
	"sync"

	"github.com/spf13/cobra"

	"pkt.systems/steadylog"
)

func newDemoCmd(opts *globalOptions) *cobra.Command {
	var (
		port    string
		workers int
		crash   bool
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Show every severity, a recovered failure, cloned loggers and the panic hook",
		Long: `Writes a short tour of the record format.

With --crash the demo installs the panic hook, indexes past the end of a
slice and dies; the fault is logged as one error record first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			sess.Log(steadylog.Ok, "self test passed")
			sess.Log(steadylog.Info, "sampling every 250ms")
			sess.Log(steadylog.Warn, "battery at 15%")
			sess.Log(steadylog.Error, "sensor 3 not responding")

			n, err := strconv.Atoi(port)
			listen, logger := steadylog.TryGet(sess.Emitter, steadylog.ResultOf(n, err), func(l steadylog.Emitter) (int, steadylog.Emitter) {
				l.Log(steadylog.Warn, "falling back to port 8080")
				return 8080, l
			})
			logger.Log(steadylog.Ok, "listening on port "+strconv.Itoa(listen))

			shared := steadylog.NewShared(steadylog.NewMonotonicClock(), sess.Sink(), steadylog.WithColor(sess.Colored()))
			var wg sync.WaitGroup
			for id := 1; id <= workers; id++ {
				wg.Add(1)
				clone := shared.Clone()
				go func() {
					defer wg.Done()
					clone.Logf(steadylog.Info, "worker %d reporting", id)
				}()
			}
			wg.Wait()

			if !crash {
				return nil
			}
			if err := steadylog.Install(logger); err != nil {
				return err
			}
			defer steadylog.Guard()
			var readings []int
			index := workers + 1
			_ = readings[index]
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "80a", "port to parse; invalid values trigger the recovery path")
	cmd.Flags().IntVar(&workers, "workers", 3, "number of cloned loggers writing concurrently")
	cmd.Flags().BoolVar(&crash, "crash", false, "end with an unrecovered fault")
	return cmd
}
