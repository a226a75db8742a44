// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cost builds and evaluates per-feature cost profiles: immutable
// snapshots mapping a feature's level to its measured execution-time
// cost, min-max normalized to [0,1]. Profiles are built from calibration
// samples off the frame-loop hot path and swapped in atomically by the
// controller, so the allocator always reads a complete snapshot.
package cost

import (
	"fmt"
	"math"
	"slices"
	"time"

	"cogentcore.org/core/math32/minmax"
)

// Sample is one calibration measurement: the time a representative
// workload took at the given feature level.
type Sample struct {
	Level float32
	Time  time.Duration
}

// Profile is an immutable cost snapshot for one feature. Cost is
// monotonically non-decreasing across the sampled levels, and
// normalized so the cheapest sampled level is 0 and the most expensive
// is 1 (or all 0 for a constant-cost feature). Do not mutate a Profile
// after it is built: the frame loop may be reading it.
type Profile struct {
	// Feature is the name of the feature this profile was built for.
	Feature string

	// Levels are the sampled level values, ascending.
	Levels []float32

	// Secs are the measured costs in seconds at each sampled level,
	// clamped to be non-decreasing.
	Secs []float32

	// Norm are the min-max normalized costs in [0,1] at each sampled level.
	Norm []float32

	// Span is the measured cost range in seconds across the sampled
	// levels, used to de-normalize back to real time.
	Span minmax.F32
}

// Build makes a [Profile] for the named feature from the given
// calibration samples. Samples are sorted by level; duplicate levels
// are averaged. Measurement noise that would make cost decrease with
// level is clamped to keep the profile monotonic. A feature with
// identical cost at every level normalizes to 0 everywhere
// (effectively free), never a division fault. At least one sample
// is required.
func Build(feat string, samples []Sample) (*Profile, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("cost.Build: no samples for feature %q", feat)
	}
	ss := slices.Clone(samples)
	slices.SortStableFunc(ss, func(a, b Sample) int {
		switch {
		case a.Level < b.Level:
			return -1
		case a.Level > b.Level:
			return 1
		}
		return 0
	})

	pr := &Profile{Feature: feat}
	for i := 0; i < len(ss); {
		j := i
		sum := float32(0)
		for j < len(ss) && ss[j].Level == ss[i].Level {
			sum += float32(ss[j].Time.Seconds())
			j++
		}
		pr.Levels = append(pr.Levels, ss[i].Level)
		pr.Secs = append(pr.Secs, sum/float32(j-i))
		i = j
	}

	for i := 1; i < len(pr.Secs); i++ {
		if pr.Secs[i] < pr.Secs[i-1] {
			pr.Secs[i] = pr.Secs[i-1]
		}
	}

	pr.Span.SetInfinity()
	for _, s := range pr.Secs {
		pr.Span.FitValInRange(s)
	}
	pr.Norm = make([]float32, len(pr.Secs))
	if rng := pr.Span.Range(); rng > 0 {
		// direct division keeps the endpoints exactly 0 and 1
		for i, s := range pr.Secs {
			pr.Norm[i] = (s - pr.Span.Min) / rng
		}
	}
	return pr, nil
}

// IsConstant returns true if the measured cost is identical at every
// sampled level, so the feature is effectively free to adjust.
func (pr *Profile) IsConstant() bool {
	return pr.Span.Range() == 0
}

// MinLevel returns the lowest sampled level.
func (pr *Profile) MinLevel() float32 {
	return pr.Levels[0]
}

// MaxLevel returns the highest sampled level.
func (pr *Profile) MaxLevel() float32 {
	return pr.Levels[len(pr.Levels)-1]
}

// Cost returns the normalized cost in [0,1] at the given level,
// interpolating linearly between sampled levels and clamping outside
// the sampled range.
func (pr *Profile) Cost(level float32) float32 {
	return pr.interp(pr.Norm, level)
}

// Time returns the estimated real execution time at the given level,
// de-normalized from the measured cost range.
func (pr *Profile) Time(level float32) time.Duration {
	return time.Duration(math.Round(float64(pr.interp(pr.Secs, level)) * float64(time.Second)))
}

// LevelForTime returns the greatest level whose estimated cost does not
// exceed the given time: the inverse of [Profile.Time]. If even the
// lowest sampled level costs more, that lowest level is returned.
func (pr *Profile) LevelForTime(d time.Duration) float32 {
	s := float32(d.Seconds())
	n := len(pr.Levels)
	if s >= pr.Secs[n-1] {
		return pr.Levels[n-1]
	}
	for i := n - 1; i >= 0; i-- {
		if pr.Secs[i] <= s {
			span := pr.Secs[i+1] - pr.Secs[i]
			if span <= 0 {
				return pr.Levels[i]
			}
			frac := (s - pr.Secs[i]) / span
			return pr.Levels[i] + frac*(pr.Levels[i+1]-pr.Levels[i])
		}
	}
	return pr.Levels[0]
}

// interp linearly interpolates the given per-level values at level,
// clamping outside the sampled range.
func (pr *Profile) interp(vals []float32, level float32) float32 {
	n := len(pr.Levels)
	if level <= pr.Levels[0] {
		return vals[0]
	}
	if level >= pr.Levels[n-1] {
		return vals[n-1]
	}
	for i := 1; i < n; i++ {
		if level <= pr.Levels[i] {
			span := pr.Levels[i] - pr.Levels[i-1]
			if span <= 0 {
				return vals[i]
			}
			frac := (level - pr.Levels[i-1]) / span
			return vals[i-1] + frac*(vals[i]-vals[i-1])
		}
	}
	return vals[n-1]
}
