// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlrand/dump"
)

const (
	cmdHistogram = "histogram"

	cfgBins = "bins"
	cfgLo   = "lo"
	cfgHi   = "hi"
)

func newHistogramCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   cmdHistogram + " FILE...",
		Short: "print bin counts and a summary of dump files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runHistogram(cmd, args)
		},
	}

	cmd.Flags().Int(cfgBins, 100, "number of equal-width bins")
	cmd.Flags().Float64(cfgLo, 0, "lower edge of the first bin")
	cmd.Flags().Float64(cfgHi, 1, "upper edge of the last bin")
	e.bind(cmd.Flags(), cmdHistogram)

	return cmd
}

func (e *env) runHistogram(cmd *cobra.Command, files []string) error {
	bins := e.v.GetInt(cmdHistogram + "." + cfgBins)
	lo := e.v.GetFloat64(cmdHistogram + "." + cfgLo)
	hi := e.v.GetFloat64(cmdHistogram + "." + cfgHi)
	out := cmd.OutOrStdout()

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%s: %w", cmdHistogram, err)
		}
		seed, values, err := dump.Read(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("%s: %s: %w", cmdHistogram, path, err)
		}

		hist, err := dump.Histogram(values, bins, lo, hi)
		if err != nil {
			return fmt.Errorf("%s: %w", cmdHistogram, err)
		}

		fmt.Fprintf(out, "%s (seed %d)\n", path, seed)
		renderHistogram(out, hist, len(values))
		renderSummary(out, dump.Summarize(values))
	}

	return nil
}

func renderHistogram(w io.Writer, hist []dump.Bin, total int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Bin", "Lo", "Hi", "Count", "Share"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i, b := range hist {
		share := 0.0
		if total > 0 {
			share = float64(b.Count) / float64(total)
		}
		table.Append([]string{
			strconv.Itoa(i),
			strconv.FormatFloat(b.Lo, 'g', 6, 64),
			strconv.FormatFloat(b.Hi, 'g', 6, 64),
			humanize.Comma(int64(b.Count)),
			strconv.FormatFloat(share*100, 'f', 3, 64) + "%",
		})
	}
	table.Render()
}

func renderSummary(w io.Writer, s dump.Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Count", "Min", "Max", "Mean", "Variance", "StdDev"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.Append([]string{
		humanize.Comma(int64(s.Count)),
		strconv.FormatFloat(s.Min, 'g', dump.Digits, 64),
		strconv.FormatFloat(s.Max, 'g', dump.Digits, 64),
		strconv.FormatFloat(s.Mean, 'g', dump.Digits, 64),
		strconv.FormatFloat(s.Variance, 'g', dump.Digits, 64),
		strconv.FormatFloat(s.StdDev(), 'g', dump.Digits, 64),
	})
	table.Render()
}
