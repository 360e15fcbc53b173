// SPDX-License-Identifier: MIT
// Package: lvlrand/dump
//
// stats.go — single-pass summary and equal-width histogram.

package dump

import (
	"fmt"
	"math"
)

// Summary describes a value set. Variance is the population variance.
type Summary struct {
	Count    int
	Min      float64
	Max      float64
	Mean     float64
	Variance float64
}

// StdDev returns the population standard deviation.
func (s Summary) StdDev() float64 { return math.Sqrt(s.Variance) }

// Summarize computes a Summary with Welford's update. An empty input yields
// the zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	s := Summary{Min: values[0], Max: values[0]}
	var m2 float64
	for _, v := range values {
		s.Count++
		delta := v - s.Mean
		s.Mean += delta / float64(s.Count)
		m2 += delta * (v - s.Mean)

		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Variance = m2 / float64(s.Count)

	return s
}

// Bin is one histogram bucket covering [Lo, Hi); the last bucket also
// includes Hi.
type Bin struct {
	Lo    float64
	Hi    float64
	Count int
}

// Histogram counts values into bins equal-width buckets over [lo, hi].
// Values outside the range (and NaN) are not counted.
func Histogram(values []float64, bins int, lo, hi float64) ([]Bin, error) {
	if bins < 1 || !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("%s: bins=%d range=[%v,%v]: %w", methodHistogram, bins, lo, hi, ErrBadBins)
	}

	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Lo = lo + float64(i)*width
		out[i].Hi = lo + float64(i+1)*width
	}
	out[bins-1].Hi = hi

	for _, v := range values {
		if !(v >= lo && v <= hi) {
			continue
		}
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}

	return out, nil
}
