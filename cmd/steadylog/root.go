package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pkt.systems/steadylog"
	"pkt.systems/steadylog/ansi"
)

const envPrefix = "STEADYLOG_"

type globalOptions struct {
	configPath string
	clock      string
	timeFormat string
	palette    string
	output     string
	noColor    bool
	forceColor bool
	utc        bool
	compact    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "steadylog",
		Short: "Write steadylog records from the shell",
		Long: `steadylog renders records in the steadylog line format:

  O&:1.204s: calibrated
  W&:1.377s: battery low

Settings are read from an optional YAML file (--config), then from
STEADYLOG_* environment variables, then from flags; later sources win.

Examples:
  # One warning record
  steadylog emit --severity warn battery low

  # Re-render a build log, colouring lines by their level prefix
  make 2>&1 | steadylog pipe --summary`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&opts.clock, "clock", "", "timestamp clock: none, monotonic or wall")
	flags.StringVar(&opts.timeFormat, "time-format", "", "layout for the wall clock")
	flags.BoolVar(&opts.utc, "utc", false, "render wall time in UTC")
	flags.StringVar(&opts.palette, "palette", "", "colour palette ("+strings.Join(ansi.PaletteNames(), ", ")+")")
	flags.StringVarP(&opts.output, "output", "o", "", "stdout, stderr, a file path, or stdout+<path> to tee")
	flags.BoolVar(&opts.noColor, "no-color", false, "never colour output")
	flags.BoolVar(&opts.forceColor, "force-color", false, "colour output even when it is not a terminal")
	flags.BoolVar(&opts.compact, "compact", steadylog.ZeroAllocTrack, "use the zero-allocation track")

	root.AddCommand(newEmitCmd(opts), newPipeCmd(opts), newDemoCmd(opts))
	return root
}

// settings layers config file, environment and flags.
func (o *globalOptions) settings(flags *pflag.FlagSet) (steadylog.EnvSettings, error) {
	var base steadylog.EnvSettings
	if o.configPath != "" {
		cfg, err := loadConfig(o.configPath)
		if err != nil {
			return base, err
		}
		base = cfg.EnvSettings()
	}
	s := steadylog.ResolveEnv(envPrefix, base)
	if flags.Changed("clock") {
		s.Clock = o.clock
	}
	if flags.Changed("time-format") {
		s.TimeFormat = o.timeFormat
	}
	if flags.Changed("utc") {
		s.UTC = o.utc
	}
	if flags.Changed("palette") {
		s.Palette = o.palette
	}
	if flags.Changed("output") {
		s.Output = o.output
	}
	if flags.Changed("no-color") {
		s.NoColor = o.noColor
	}
	if flags.Changed("force-color") {
		s.ForceColor = o.forceColor
	}
	return s, nil
}

// session is the logger a command writes through.
type session struct {
	steadylog.Emitter
	logger *steadylog.Logger[steadylog.Clock, *steadylog.WriterSink]
}

func (o *globalOptions) open(cmd *cobra.Command) (*session, error) {
	s, err := o.settings(cmd.Flags())
	if err != nil {
		return nil, err
	}
	logger, err := steadylog.Build(s, cmd.OutOrStdout())
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}
	sess := &session{Emitter: logger, logger: logger}
	if o.compact {
		opts := []steadylog.Option{steadylog.WithColor(logger.Colored())}
		if s.Palette != "" {
			opts = append(opts, steadylog.WithPalette(ansi.PaletteByName(s.Palette)))
		}
		sess.Emitter = steadylog.NewCompact(logger.Clock(), logger.Sink(), opts...)
	}
	return sess, nil
}

func (s *session) Colored() bool {
	return s.logger.Colored()
}

func (s *session) Sink() *steadylog.WriterSink {
	return s.logger.Sink()
}

func (s *session) Close() error {
	if wall, ok := s.logger.Clock().(*steadylog.WallClock); ok {
		wall.Close()
	}
	return s.logger.Sink().Close()
}
