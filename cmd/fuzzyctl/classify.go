package main

import (
	"fmt"
	"os"
	"strconv"

	"fuzzy-go/internal/inference"
	"fuzzy-go/internal/membership"
	"fuzzy-go/pkg/fuzzy"

	"github.com/spf13/cobra"
)

var temperatureCmd = &cobra.Command{
	Use:   "temperature [flags] [--] celsius",
	Short: "Classify a room temperature",
	Long: `Classify a room temperature into Dingin, Sejuk, Normal, Panas or Sangat Panas.

Negative values must follow --, for example: fuzzyctl temperature --round -- -5`,
	Args: cobra.ExactArgs(1),
	RunE: runTemperature,
}

var weatherCmd = &cobra.Command{
	Use:   "weather [flags] [--] celsius humidity",
	Short: "Classify a temperature and humidity pair",
	Long: `Classify a temperature and relative humidity pair into Panas, Cerah, Berawan, Gerimis or Hujan Lebat.

Negative values must follow --, for example: fuzzyctl weather -- -5 40`,
	Args: cobra.ExactArgs(2),
	RunE: runWeather,
}

func init() {
	for _, cmd := range []*cobra.Command{temperatureCmd, weatherCmd} {
		cmd.Flags().Bool("round", false, "clamp inputs to the operating range and round to 0.1 before classifying")
		cmd.Flags().Bool("strict", false, "reject inputs outside the operating range")
	}
}

func runTemperature(cmd *cobra.Command, args []string) error {
	values, err := parseInputs(cmd, args, membership.Temperature)
	if err != nil {
		return err
	}

	result, err := fuzzy.ClassifyTemperature(values[0])
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}
	return printResult(os.Stdout, result, jsonOutput(cmd))
}

func runWeather(cmd *cobra.Command, args []string) error {
	values, err := parseInputs(cmd, args, membership.Temperature, membership.Humidity)
	if err != nil {
		return err
	}

	result, err := fuzzy.ClassifyWeather(values[0], values[1])
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}
	return printResult(os.Stdout, result, jsonOutput(cmd))
}

// parseInputs reads one positional argument per variable and applies --strict and --round.
func parseInputs(cmd *cobra.Command, args []string, vars ...*membership.Variable) ([]float64, error) {
	round, err := cmd.Flags().GetBool("round")
	if err != nil {
		return nil, fmt.Errorf("failed to get round flag: %w", err)
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return nil, fmt.Errorf("failed to get strict flag: %w", err)
	}

	values := make([]float64, len(vars))
	inputs := make(map[string]float64, len(vars))
	for i, v := range vars {
		x, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", v.Name, args[i], err)
		}
		values[i] = x
		inputs[v.Name] = x
	}

	if strict {
		if err := inference.ValidateRange(vars, inputs); err != nil {
			return nil, err
		}
	}
	if round {
		for i, v := range vars {
			values[i] = inference.Quantize(v, values[i])
		}
	}
	return values, nil
}
