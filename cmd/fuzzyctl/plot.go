package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fuzzy-go/internal/chart"
	"fuzzy-go/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var plotCmd = &cobra.Command{
	Use:   "plot [flags] variable",
	Short: "Render the membership chart of a variable",
	Long:  `Plot draws every fuzzy set of temperature or humidity to a PNG or SVG file, optionally marking one input value`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPlot,
}

func init() {
	addRangeFlags(plotCmd)
	plotCmd.Flags().StringP("output", "o", "", "output file, format taken from the extension (.png|.svg)")
	plotCmd.Flags().Float64("marker", 0, "draw a vertical marker and the set degrees at this value")
	plotCmd.Flags().Float64("width", 8, "chart width in inches")
	plotCmd.Flags().Float64("height", 4, "chart height in inches")
	_ = plotCmd.MarkFlagRequired("output")
}

func runPlot(cmd *cobra.Command, args []string) error {
	v, req, err := rangeRequest(cmd, args[0])
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	req.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")

	if cmd.Flags().Changed("marker") {
		marker, err := cmd.Flags().GetFloat64("marker")
		if err != nil {
			return fmt.Errorf("failed to get marker flag: %w", err)
		}
		req.Marker = &marker
	}

	width, err := cmd.Flags().GetFloat64("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}
	height, err := cmd.Flags().GetFloat64("height")
	if err != nil {
		return fmt.Errorf("failed to get height flag: %w", err)
	}
	renderer, err := chart.NewRenderer(config.ChartConfig{Width: width, Height: height}, nil, zap.NewNop())
	if err != nil {
		return err
	}

	img, err := renderer.Render(v, req)
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}
	if err := os.WriteFile(output, img, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Fprintf(os.Stdout, "%s %s (%d bytes)\n", labelColor.Sprint("wrote"), output, len(img))
	return nil
}
