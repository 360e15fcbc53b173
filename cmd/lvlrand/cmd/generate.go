// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlrand/dump"
	"github.com/katalvlaran/lvlrand/internal/metrics"
)

const (
	cmdGenerate = "generate"

	cfgN               = "n"
	cfgOutput          = "output"
	cfgMetricsTextfile = "metrics.textfile"
)

func newGenerateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   cmdGenerate,
		Short: "write a numeric dump of Random() draws",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runGenerate(cmd)
		},
	}

	cmd.Flags().Int(cfgN, 100000, "number of values")
	cmd.Flags().String(cfgOutput, "output", "output directory")
	cmd.Flags().String(cfgMetricsTextfile, "", "write prometheus metrics to this textfile")
	e.bind(cmd.Flags(), cmdGenerate)

	return cmd
}

func (e *env) runGenerate(cmd *cobra.Command) error {
	n := e.v.GetInt(cmdGenerate + "." + cfgN)
	dir := e.v.GetString(cmdGenerate + "." + cfgOutput)

	g, err := e.seededGenerator()
	if err != nil {
		return err
	}

	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", cmdGenerate, err)
	}
	path := filepath.Join(dir, dump.FileName(n))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w", cmdGenerate, err)
	}
	if err = dump.Generate(f, g, n); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", cmdGenerate, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%s: %w", cmdGenerate, err)
	}

	var size uint64
	if fi, statErr := os.Stat(path); statErr == nil {
		size = uint64(fi.Size())
	}
	_ = level.Info(e.logger).Log(
		"msg", "dump written",
		"path", path,
		"n", n,
		"seed", g.Seed(),
		"algorithm", g.Algorithm(),
		"size", humanize.IBytes(size),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s values (%s) with seed %d to %s\n",
		humanize.Comma(int64(n)), humanize.IBytes(size), g.Seed(), path)

	if textfile := e.v.GetString(cmdGenerate + "." + cfgMetricsTextfile); textfile != "" {
		reg := metrics.NewRegistry()
		reg.Generators().Track(cmdGenerate, g)
		reg.ObserveDump(n)
		if err = reg.WriteTextfile(textfile); err != nil {
			return fmt.Errorf("%s: %w", cmdGenerate, err)
		}
	}

	return nil
}
