// Package cli implements the vinci command-line surface: argument
// parsing, stdout rendering, profiling flags, structured diagnostics,
// and the bench/plot extras, all built on top of internal/forest.
package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/JanFalkin/vinci/internal/forest"
)

var rootCmd = &cobra.Command{
	Use:   "vinci <N> <M>",
	Short: "Enumerate unordered rooted trees with N nodes and at most M leaves",
	Long: `vinci generates every non-isomorphic unordered rooted tree with exactly
N nodes and at most M leaves, printing each one in canonical form.`,
	Args: cobra.ExactArgs(2),
	RunE: runEnumerate,
}

var opts struct {
	quiet      bool
	workers    int
	noParallel bool
	profile    string
	plot       string
}

func init() {
	rootCmd.Flags().BoolVar(&opts.quiet, "quiet", false, "suppress per-tree output, print only the summary")
	rootCmd.Flags().IntVar(&opts.workers, "workers", 0, "number of parallel workers (0 = auto)")
	rootCmd.Flags().BoolVar(&opts.noParallel, "no-parallel", false, "disable the parallel driver regardless of N")
	rootCmd.Flags().StringVar(&opts.profile, "profile", "", "enable profiling, one of [cpu, mem, mutex, block, trace, wall]")
	rootCmd.Flags().StringVar(&opts.plot, "plot", "", "write a leaf-count distribution histogram PNG to this path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runEnumerate(cmd *cobra.Command, args []string) error {
	n, err := parsePositiveInt(args[0], "N")
	if err != nil {
		return err
	}
	m, err := parsePositiveInt(args[1], "M")
	if err != nil {
		return err
	}

	stopProfile := startProfile(opts.profile)
	defer stopProfile()

	logger := newLogger()
	defer func() { _ = logger.Sync() }()
	forest.Logger = logger

	available := forest.AvailableMemoryMiB()
	refusal, warning := forest.CheckResources(n, available)
	if refusal != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), refusal)
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return errExitCode{1}
	}
	if warning != nil {
		logger.Warn(warning.Error())
	}

	r := newRenderer(cmd.OutOrStdout(), opts.quiet)
	r.printHeader(n, m)

	var histogram leafHistogram
	sink := forest.SinkFunc(func(t forest.Tree) {
		r.emit(t)
		histogram.add(t.LeafCount())
	})

	start := time.Now()
	total := forest.Run(forest.Request{
		N:        n,
		M:        m,
		Sink:     sink,
		Parallel: !opts.noParallel,
		Workers:  opts.workers,
	})
	elapsed := time.Since(start)

	r.printSummary(total, elapsed)

	if opts.plot != "" {
		if err := writeLeafHistogram(opts.plot, histogram); err != nil {
			logger.Warn("plot: " + err.Error())
		}
	}
	return nil
}

func parsePositiveInt(s, name string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must be >= 0", name)
	}
	return v, nil
}

// errExitCode carries a desired process exit code through cobra's
// error-returning RunE without printing an additional "Error: ..."
// line — cmd/vinci inspects it to choose os.Exit's argument.
type errExitCode struct {
	code int
}

func (e errExitCode) Error() string { return "" }

// ExitCode extracts the intended exit code from an error returned by
// Execute, defaulting to 1 for any other non-nil error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(errExitCode); ok {
		return e.code
	}
	return 1
}
