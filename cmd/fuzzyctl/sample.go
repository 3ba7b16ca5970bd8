package main

import (
	"fmt"
	"io"
	"os"

	"fuzzy-go/internal/chart"
	"fuzzy-go/internal/membership"

	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [flags] variable",
	Short: "Sample the membership curves of a variable",
	Long:  `Sample evaluates every fuzzy set of temperature or humidity over a range and prints one row per point`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSample,
}

func init() {
	addRangeFlags(sampleCmd)
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("start", 0, "first x value (defaults to the lower operating bound)")
	cmd.Flags().Float64("end", 0, "last x value (defaults to the upper operating bound)")
	cmd.Flags().Float64("step", chart.DefaultStep, "distance between samples")
}

// rangeRequest resolves the variable argument and the range flags. Each bound
// falls back to the operating range on its own when its flag is not set.
func rangeRequest(cmd *cobra.Command, name string) (*membership.Variable, chart.Request, error) {
	v, ok := membership.Lookup(name)
	if !ok {
		return nil, chart.Request{}, fmt.Errorf("unknown variable %q, expected one of %v", name, membership.Names())
	}
	req := chart.NewRequest(v)
	flags := []struct {
		name string
		dst  *float64
	}{
		{"start", &req.Start},
		{"end", &req.End},
		{"step", &req.Step},
	}
	for _, f := range flags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		value, err := cmd.Flags().GetFloat64(f.name)
		if err != nil {
			return nil, chart.Request{}, fmt.Errorf("failed to get %s flag: %w", f.name, err)
		}
		*f.dst = value
	}
	return v, req, nil
}

func runSample(cmd *cobra.Command, args []string) error {
	v, req, err := rangeRequest(cmd, args[0])
	if err != nil {
		return err
	}

	samples, err := v.Sample(req.Start, req.End, req.Step)
	if err != nil {
		return fmt.Errorf("sampling failed: %w", err)
	}

	if jsonOutput(cmd) {
		return printJSON(os.Stdout, samples)
	}
	printSamples(os.Stdout, v, samples)
	return nil
}

func printSamples(w io.Writer, v *membership.Variable, samples []membership.Sample) {
	fmt.Fprintf(w, "%s", labelColor.Sprintf("%11s", v.Name))
	for _, set := range v.Sets {
		fmt.Fprintf(w, " %s", labelColor.Sprintf("%13s", set.Label))
	}
	fmt.Fprintln(w)
	for _, s := range samples {
		fmt.Fprintf(w, "%11.2f", s.X)
		for _, d := range s.Degrees {
			fmt.Fprintf(w, " %13.4f", d)
		}
		fmt.Fprintln(w)
	}
}
