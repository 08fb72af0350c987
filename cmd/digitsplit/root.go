package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/digitsplit"
	"github.com/zephyrtronium/digitsplit/internal/config"
	"github.com/zephyrtronium/digitsplit/internal/logging"
	"github.com/zephyrtronium/digitsplit/internal/output"
	"github.com/zephyrtronium/digitsplit/internal/prompt"
	"github.com/zephyrtronium/digitsplit/internal/term"
)

type flags struct {
	config      string
	digits      string
	splits      int
	goal        float64
	ops         string
	color       string
	logLevel    string
	logFormat   string
	logFile     string
	interactive bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "digitsplit [digits [splits [goal]]]",
		Short: "Find arithmetic on a string of digits that comes closest to a goal",
		Long: `digitsplit cuts a string of digits into numbers, joins them with + - * / ^
into fully parenthesized expressions using at most the given number of
operators, and prints every expression that is at least as close to the goal
as the ones printed before it.

Values missing from the arguments, flags and config are taken from standard
input: prompted for on a terminal, or read as "digits splits goal" when input
is piped. Values that still have not been given use the defaults
123456789, 8 and 10958.`,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "JSON config file (default $DIGITSPLIT_CONFIG or ./digitsplit.json)")
	fl.StringVarP(&f.digits, "digits", "d", "", "digits to split")
	fl.IntVarP(&f.splits, "splits", "s", 0, "maximum number of operators")
	fl.Float64VarP(&f.goal, "goal", "g", 0, "value to approach")
	fl.StringVar(&f.ops, "ops", "", `operators to use, e.g. "+-*"`)
	fl.StringVar(&f.color, "color", "", "highlight exact matches: auto, always or never")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: trace, debug, info, warn or error")
	fl.StringVar(&f.logFormat, "log-format", "", "log format: console or json")
	fl.StringVar(&f.logFile, "log-file", "", "write logs to a rotated file instead of stderr")
	fl.BoolVarP(&f.interactive, "interactive", "i", false, "prompt for digits, splits and goal")
	return cmd
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	given, err := applyArgs(cmd, args, f, cfg)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closer, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()

	if err := readValues(cmd, f.interactive, given, cfg); err != nil {
		return err
	}

	ops, err := digitsplit.ParseOps(cfg.Ops)
	if err != nil {
		return fmt.Errorf("--ops: %w", err)
	}
	s, err := digitsplit.NewSearch(cfg.Digits, cfg.Splits, cfg.Goal,
		digitsplit.WithOps(ops...),
		digitsplit.WithLogger(log),
	)
	if err != nil {
		return err
	}
	p := output.New(cmd.OutOrStdout(), output.ColorEnabled(cfg.Color, cmd.OutOrStdout()))
	st := s.Run(p.Report)
	log.Info().
		Int("trees", st.Trees).
		Int("reports", st.Reports).
		Float64("best", st.Best).
		Dur("elapsed", st.Elapsed).
		Msg("done")
	return p.Err()
}

// readValues fills in the digits, splits and goal from standard input when
// none were given on the command line: by prompting on a terminal, or by
// reading three words from piped input. With interactive set, it always
// prompts.
func readValues(cmd *cobra.Command, interactive, given bool, cfg *config.Config) error {
	in := cmd.InOrStdin()
	tty := term.IsTerminal(in)
	switch {
	case interactive || (!given && tty):
		ln := prompt.Open()
		defer ln.Close()
		return prompt.Ask(ln, cfg)
	case !given:
		if err := prompt.Scan(in, cfg); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}
	return nil
}

// applyArgs overrides cfg with positional arguments and explicitly set flags,
// in that order. It reports whether any search value was given.
func applyArgs(cmd *cobra.Command, args []string, f *flags, cfg *config.Config) (bool, error) {
	given := len(args) > 0
	if len(args) > 0 {
		cfg.Digits = args[0]
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return false, fmt.Errorf("splits: %w", err)
		}
		cfg.Splits = n
	}
	if len(args) > 2 {
		g, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return false, fmt.Errorf("goal: %w", err)
		}
		cfg.Goal = g
	}

	fl := cmd.Flags()
	if fl.Changed("digits") {
		cfg.Digits, given = f.digits, true
	}
	if fl.Changed("splits") {
		cfg.Splits, given = f.splits, true
	}
	if fl.Changed("goal") {
		cfg.Goal, given = f.goal, true
	}
	if fl.Changed("ops") {
		cfg.Ops = f.ops
	}
	if fl.Changed("color") {
		cfg.Color = f.color
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if fl.Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	return given, nil
}
