// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlrand/bitsfmt"
	"github.com/katalvlaran/lvlrand/prng"
)

const (
	cmdDraw = "draw"

	cfgTransform = "transform"
	cfgSkip      = "skip"
	cfgBits      = "bits"
)

var errUnknownTransform = errors.New("unknown transform")

// transform draws one value (or one vector) from g.
type transform func(g *prng.Generator) []float64

func scalar(fn func(*prng.Generator) float64) transform {
	return func(g *prng.Generator) []float64 { return []float64{fn(g)} }
}

var transforms = map[string]transform{
	"close1open2":   scalar((*prng.Generator).Close1Open2),
	"close0open1":   scalar((*prng.Generator).Close0Open1),
	"open0close1":   scalar((*prng.Generator).Open0Close1),
	"closen1open1":  scalar((*prng.Generator).CloseN1Open1),
	"close0close1":  scalar((*prng.Generator).Close0Close1),
	"closen1close1": scalar((*prng.Generator).CloseN1Close1),
	"gaussian":      scalar((*prng.Generator).Gasdev),
	"direction": func(g *prng.Generator) []float64 {
		v := g.Direction()
		return v[:]
	},
}

func transformNames() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newDrawCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   cmdDraw,
		Short: "print draws of an interval transform or sampler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runDraw(cmd)
		},
	}

	cmd.Flags().String(cfgTransform, "close0open1", "one of "+strings.Join(transformNames(), ", "))
	cmd.Flags().Int(cfgN, 10, "number of draws")
	cmd.Flags().Int(cfgSkip, 0, "Random() draws to discard first")
	cmd.Flags().Bool(cfgBits, false, "append the IEEE-754 bit pattern of each value")
	e.bind(cmd.Flags(), cmdDraw)

	return cmd
}

func (e *env) runDraw(cmd *cobra.Command) error {
	name := strings.ToLower(e.v.GetString(cmdDraw + "." + cfgTransform))
	fn, ok := transforms[name]
	if !ok {
		return fmt.Errorf("%s: %q: %w", cmdDraw, name, errUnknownTransform)
	}
	n := e.v.GetInt(cmdDraw + "." + cfgN)
	bits := e.v.GetBool(cmdDraw + "." + cfgBits)

	g, err := e.seededGenerator()
	if err != nil {
		return err
	}
	g.CallN(e.v.GetInt(cmdDraw + "." + cfgSkip))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# algorithm=%s seed=%d transform=%s\n", g.Algorithm(), g.Seed(), name)

	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.Reset()
		for j, v := range fn(g) {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			if bits {
				sb.WriteString(" [")
				sb.WriteString(bitsfmt.Float64(v))
				sb.WriteByte(']')
			}
		}
		fmt.Fprintln(out, sb.String())
	}
	_, _ = fmt.Fprintf(out, "# %s\n", g.Snapshot())

	return nil
}
