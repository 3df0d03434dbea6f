package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/JanFalkin/vinci/internal/forest"
)

var benchIterations int

var benchCmd = &cobra.Command{
	Use:   "bench <fromN> <toN>",
	Short: "Sweep N from fromN to toN at M=N and report timing statistics",
	Args:  cobra.ExactArgs(2),
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 1, "number of repeats per N")
	rootCmd.AddCommand(benchCmd)
}

// runBench repeats the full enumeration for N in [fromN, toN] at
// M=N, reporting wall-clock mean/stddev per N across --iterations
// repeats, and cross-checks the count against forest.A000081 whenever
// N is within the table's range — ported from the
// loop-over-configurations / gonum stat.MeanStdDev shape of
// optitree/sa.go's SimulatedAnnealingPerformance and
// optitree/kauri.go's KauriFaultLatency.
func runBench(cmd *cobra.Command, args []string) error {
	fromN, err := parsePositiveInt(args[0], "fromN")
	if err != nil {
		return err
	}
	toN, err := parsePositiveInt(args[1], "toN")
	if err != nil {
		return err
	}
	if benchIterations < 1 {
		benchIterations = 1
	}

	out := cmd.OutOrStdout()
	available := forest.AvailableMemoryMiB()
	var refused bool
	for n := fromN; n <= toN; n++ {
		refusal, warning := forest.CheckResources(n, available)
		if refusal != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "N=%2d: skipped: %v\n", n, refusal)
			refused = true
			continue
		}
		if warning != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "N=%2d: %v\n", n, warning)
		}

		samples := make([]float64, benchIterations)
		var count int
		for i := 0; i < benchIterations; i++ {
			start := time.Now()
			count = forest.Run(forest.Request{N: n, M: n, Sink: forest.SinkFunc(func(forest.Tree) {}), Parallel: true})
			samples[i] = time.Since(start).Seconds() * 1000
		}
		mean, stddev := stat.MeanStdDev(samples, nil)
		fmt.Fprintf(out, "N=%2d: trees=%d mean=%.3fms stddev=%.3fms\n", n, count, mean, stddev)

		if n >= 1 && n <= len(forest.A000081) {
			want := forest.A000081[n-1]
			if int64(count) != want {
				fmt.Fprintf(out, "  MISMATCH: expected %d trees per OEIS A000081(%d)\n", want, n)
			}
		}
	}
	if refused {
		return errExitCode{1}
	}
	return nil
}
