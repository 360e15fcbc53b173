// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlrand/dump"
	"github.com/katalvlaran/lvlrand/internal/metrics"
)

const (
	cmdCompare = "compare"

	cfgInput     = "input"
	cfgTolerance = "tolerance"
)

func newCompareCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   cmdCompare,
		Short: "regenerate a dump from its seed and report differing values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runCompare(cmd)
		},
	}

	cmd.Flags().String(cfgInput, "input/"+dump.FileName(100000), "dump to validate")
	cmd.Flags().Float64(cfgTolerance, dump.DefaultTolerance, "maximum absolute difference")
	cmd.Flags().String(cfgMetricsTextfile, "", "write prometheus metrics to this textfile")
	e.bind(cmd.Flags(), cmdCompare)

	return cmd
}

func (e *env) runCompare(cmd *cobra.Command) error {
	path := e.v.GetString(cmdCompare + "." + cfgInput)
	tol := e.v.GetFloat64(cmdCompare + "." + cfgTolerance)

	g, err := e.generator()
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", cmdCompare, err)
	}
	defer f.Close()

	report, err := dump.Compare(f, g, tol)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", cmdCompare, path, err)
	}

	for _, m := range report.Mismatches {
		_ = level.Debug(e.logger).Log("msg", "mismatch", "index", m.Index, "stored", m.Stored, "drawn", m.Drawn)
	}
	_ = level.Info(e.logger).Log(
		"msg", "comparison done",
		"path", path,
		"seed", report.Seed,
		"algorithm", report.Algorithm,
		"compared", report.Compared,
		"mismatches", len(report.Mismatches),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Comparison done. %d error(s)\n", len(report.Mismatches))

	if textfile := e.v.GetString(cmdCompare + "." + cfgMetricsTextfile); textfile != "" {
		reg := metrics.NewRegistry()
		reg.Generators().Track(cmdCompare, g)
		reg.ObserveReport(report)
		if err = reg.WriteTextfile(textfile); err != nil {
			return fmt.Errorf("%s: %w", cmdCompare, err)
		}
	}

	return report.Err()
}
