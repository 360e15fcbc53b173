// SPDX-License-Identifier: MIT
// Package: lvlrand/dump
//
// dump.go — the dump file format.

package dump

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvlrand/alloc"
	"github.com/katalvlaran/lvlrand/prng"
)

// Digits is the number of significant digits written per value.
const Digits = 14

// FileName returns the conventional name of a dump holding n values.
func FileName(n int) string {
	return "N" + strconv.Itoa(n) + ".txt"
}

// Write writes seed followed by one value per line.
func Write(w io.Writer, seed uint32, values []float64) error {
	bw := bufio.NewWriter(w)

	buf := make([]byte, 0, 32)
	buf = strconv.AppendUint(buf, uint64(seed), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return fmt.Errorf("%s: seed: %w", methodWrite, err)
	}

	for i, v := range values {
		buf = strconv.AppendFloat(buf[:0], v, 'g', Digits, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("%s: value %d: %w", methodWrite, i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: flush: %w", methodWrite, err)
	}

	return nil
}

// Generate draws n Random() values from g and writes them with g's seed.
// g must be initialized.
func Generate(w io.Writer, g *prng.Generator, n int) error {
	if !g.Initialized() {
		return fmt.Errorf("%s: %w", methodGenerate, prng.ErrUninitialized)
	}

	values, err := alloc.Slice[float64](n, "dump values")
	if err != nil {
		return fmt.Errorf("%s: %w", methodGenerate, err)
	}
	for i := range values {
		values[i] = g.Random()
	}

	return Write(w, g.Seed(), values)
}

// Read parses a dump. Tokens may be separated by any whitespace.
func Read(r io.Reader) (seed uint32, values []float64, err error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err = sc.Err(); err != nil {
			return 0, nil, fmt.Errorf("%s: %w", methodRead, err)
		}
		return 0, nil, fmt.Errorf("%s: %w", methodRead, ErrEmpty)
	}

	s, perr := strconv.ParseUint(sc.Text(), 10, 32)
	if perr != nil {
		return 0, nil, fmt.Errorf("%s: seed %q: %w", methodRead, sc.Text(), ErrMalformed)
	}
	seed = uint32(s)

	for sc.Scan() {
		v, perr := strconv.ParseFloat(sc.Text(), 64)
		if perr != nil {
			return 0, nil, fmt.Errorf("%s: value %d %q: %w", methodRead, len(values), sc.Text(), ErrMalformed)
		}
		values = append(values, v)
	}
	if err = sc.Err(); err != nil {
		return 0, nil, fmt.Errorf("%s: %w", methodRead, err)
	}

	return seed, values, nil
}
