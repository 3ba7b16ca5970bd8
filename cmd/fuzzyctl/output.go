package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"fuzzy-go/internal/inference"
	"fuzzy-go/internal/inference/temperature"
	"fuzzy-go/internal/inference/weather"

	"github.com/fatih/color"
)

const barWidth = 20

var (
	labelColor   = color.New(color.Bold)
	warningColor = color.New(color.FgYellow)

	conditionColors = map[string]map[string]*color.Color{
		temperature.EngineName: {
			temperature.Dingin.String():      color.New(color.FgBlue, color.Bold),
			temperature.Sejuk.String():       color.New(color.FgCyan, color.Bold),
			temperature.Normal.String():      color.New(color.FgGreen, color.Bold),
			temperature.Panas.String():       color.New(color.FgYellow, color.Bold),
			temperature.SangatPanas.String(): color.New(color.FgRed, color.Bold),
		},
		weather.EngineName: {
			weather.Panas.String():      color.New(color.FgRed, color.Bold),
			weather.Cerah.String():      color.New(color.FgYellow, color.Bold),
			weather.Berawan.String():    color.New(color.FgWhite, color.Bold),
			weather.Gerimis.String():    color.New(color.FgCyan, color.Bold),
			weather.HujanLebat.String(): color.New(color.FgBlue, color.Bold),
		},
	}
)

func conditionColor(engine, condition string) *color.Color {
	if c, ok := conditionColors[engine][condition]; ok {
		return c
	}
	return labelColor
}

// printResult writes a classification either as indented JSON or as a
// human readable summary with one bar per membership.
func printResult(w io.Writer, r *inference.Result, asJSON bool) error {
	if asJSON {
		return printJSON(w, r)
	}

	names := make([]string, 0, len(r.Inputs))
	for name := range r.Inputs {
		names = append(names, name)
	}
	sort.Strings(names)
	inputs := make([]string, len(names))
	for i, name := range names {
		inputs[i] = fmt.Sprintf("%s=%g", name, r.Inputs[name])
	}

	fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("engine:   "), r.Engine)
	fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("inputs:   "), strings.Join(inputs, " "))
	fmt.Fprintf(w, "%s %s (degree %.4f)\n", labelColor.Sprint("condition:"),
		conditionColor(r.Engine, r.Condition).Sprint(r.Condition), r.Degree)
	fmt.Fprintf(w, "%s %.4f\n", labelColor.Sprint("crisp:    "), r.CrispOutput)

	printDegrees(w, "memberships", r.Memberships, func(label string) *color.Color {
		return conditionColor(r.Engine, label)
	})
	if len(r.TempMemberships) > 0 {
		printDegrees(w, "temperature sets", r.TempMemberships, nil)
	}
	if len(r.HumidityMemberships) > 0 {
		printDegrees(w, "humidity sets", r.HumidityMemberships, nil)
	}

	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "%s %s\n", warningColor.Sprint("warning:"), warning)
	}
	return nil
}

func printDegrees(w io.Writer, title string, degrees []inference.Degree, colorOf func(string) *color.Color) {
	fmt.Fprintf(w, "%s\n", labelColor.Sprint(title+":"))
	for _, d := range degrees {
		bar := strings.Repeat("#", int(degreeBar(d.Degree)))
		if colorOf != nil {
			bar = colorOf(d.Label).Sprint(bar)
		}
		fmt.Fprintf(w, "  %-13s %.4f %s\n", d.Label, d.Degree, bar)
	}
}

// degreeBar maps a degree to a bar length; additive strengths may exceed 1.
func degreeBar(degree float64) float64 {
	n := degree * barWidth
	if n < 0 {
		return 0
	}
	if n > barWidth {
		return barWidth
	}
	return n
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
