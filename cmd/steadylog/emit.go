package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pkt.systems/steadylog"
)

func newEmitCmd(opts *globalOptions) *cobra.Command {
	var severity string
	cmd := &cobra.Command{
		Use:   "emit [message...]",
		Short: "Write one record",
		Long: `Writes the arguments, joined by spaces, as a single record.

Examples:
  steadylog emit deploy finished
  steadylog emit --severity error --clock none disk full`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sev, ok := steadylog.ParseSeverity(severity)
			if !ok {
				return fmt.Errorf("unknown severity %q: want ok, info, warn or error", severity)
			}
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer sess.Close()
			sess.Log(sev, strings.Join(args, " "))
			return nil
		},
	}
	cmd.Flags().StringVarP(&severity, "severity", "s", "info", "record severity: ok, info, warn or error")
	return cmd
}
