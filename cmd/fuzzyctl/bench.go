package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"fuzzy-go/internal/inference"
	"fuzzy-go/pkg/fuzzy"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var benchCmd = &cobra.Command{
	Use:   "bench [flags] engine",
	Short: "Measure classification latency",
	Long:  `Bench classifies uniformly random inputs drawn from the operating ranges and prints the latency distribution`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntP("requests", "n", 100_000, "number of classifications")
	benchCmd.Flags().Int64("seed", 1, "random seed for the generated inputs")
	benchCmd.Flags().Bool("percentiles", false, "print the full percentile distribution")
}

// benchReport summarizes one benchmark run, latencies in nanoseconds.
type benchReport struct {
	Engine     string         `json:"engine"`
	Requests   int            `json:"requests"`
	Min        int64          `json:"minNs"`
	Mean       float64        `json:"meanNs"`
	P50        int64          `json:"p50Ns"`
	P90        int64          `json:"p90Ns"`
	P99        int64          `json:"p99Ns"`
	Max        int64          `json:"maxNs"`
	Conditions map[string]int `json:"conditions"`

	hist   *hdrhistogram.Histogram
	labels []string
}

func runBench(cmd *cobra.Command, args []string) error {
	n, err := cmd.Flags().GetInt("requests")
	if err != nil {
		return fmt.Errorf("failed to get requests flag: %w", err)
	}
	if n <= 0 {
		return fmt.Errorf("requests must be positive, got %d", n)
	}
	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		return fmt.Errorf("failed to get seed flag: %w", err)
	}
	full, err := cmd.Flags().GetBool("percentiles")
	if err != nil {
		return fmt.Errorf("failed to get percentiles flag: %w", err)
	}

	registry := fuzzy.NewRegistry(zap.NewNop())
	engine, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	report, err := bench(engine, n, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	if jsonOutput(cmd) {
		return printJSON(os.Stdout, report)
	}
	printBench(os.Stdout, report)
	if full {
		report.hist.PercentilesPrint(os.Stdout, 1, 1.0)
	}
	return nil
}

func bench(engine inference.Engine, n int, rng *rand.Rand) (*benchReport, error) {
	hg := hdrhistogram.New(1, int64(time.Second), 3)
	report := &benchReport{
		Engine:     engine.Name(),
		Requests:   n,
		Conditions: make(map[string]int),
		hist:       hg,
	}
	for _, c := range engine.Outputs().Categories {
		report.labels = append(report.labels, c.Label)
	}

	vars := engine.Variables()
	inputs := make(map[string]float64, len(vars))
	ctx := context.Background()
	for i := 0; i < n; i++ {
		for _, v := range vars {
			inputs[v.Name] = v.Min + rng.Float64()*(v.Max-v.Min)
		}

		t0 := time.Now()
		result, err := engine.Classify(ctx, inputs)
		elapsed := time.Since(t0)
		if err != nil {
			return nil, fmt.Errorf("classification failed: %w", err)
		}
		report.Conditions[result.Condition]++

		if err := hg.RecordValue(max(elapsed.Nanoseconds(), 1)); err != nil {
			return nil, fmt.Errorf("failed to record histogram value: %w", err)
		}
	}

	report.Min = hg.Min()
	report.Mean = hg.Mean()
	report.P50 = hg.ValueAtQuantile(50)
	report.P90 = hg.ValueAtQuantile(90)
	report.P99 = hg.ValueAtQuantile(99)
	report.Max = hg.Max()
	return report, nil
}

func printBench(w io.Writer, r *benchReport) {
	fmt.Fprintf(w, "%s %s, %d classifications\n", labelColor.Sprint("engine:"), r.Engine, r.Requests)
	fmt.Fprintf(w, "  min %dns  mean %.0fns  p50 %dns  p90 %dns  p99 %dns  max %dns\n",
		r.Min, r.Mean, r.P50, r.P90, r.P99, r.Max)
	for _, c := range r.labels {
		count := r.Conditions[c]
		fmt.Fprintf(w, "  %s %7d %5.1f%%\n", conditionColor(r.Engine, c).Sprintf("%-13s", c), count, 100*float64(count)/float64(r.Requests))
	}
}
