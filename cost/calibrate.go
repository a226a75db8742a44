// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cost

import (
	"context"
	"log/slog"
	"time"

	"cogentcore.org/adapt/feature"
)

// Measure renders one frame (or a representative workload) with the
// feature under calibration held at the given level, and reports the
// measured duration. It is supplied by the renderer and is only called
// during calibration, never on the frame-loop hot path.
type Measure func(ctx context.Context, level float32) (time.Duration, error)

// Calibrator sweeps a feature's levels through a [Measure] hook to
// gather the samples for a [Profile]. Calibration runs concurrently
// with (or interleaved between) frames; it can be aborted at any point
// through the context, in which case the last known-good profile simply
// stays in use.
type Calibrator struct {
	// Rounds is the number of measurements averaged per level.
	Rounds int `default:"3"`

	// Points is the number of interior sample points, in addition to the
	// range endpoints, for [feature.Continuous] features. Discrete
	// features are always measured exhaustively at every declared level.
	Points int `default:"3"`
}

func (cl *Calibrator) Defaults() {
	cl.Rounds = 3
	cl.Points = 3
}

// Levels returns the level values that will be measured for the given
// feature: every declared level for discrete features, the range
// endpoints plus [Calibrator.Points] evenly spaced interior points for
// continuous ones.
func (cl *Calibrator) Levels(ft *feature.Feature) []float32 {
	if ft.Scale == feature.Discrete {
		lvs := make([]float32, len(ft.Levels))
		copy(lvs, ft.Levels)
		return lvs
	}
	if ft.Range.Range() == 0 {
		return []float32{ft.Range.Min}
	}
	n := cl.Points + 2
	if n < 2 {
		n = 2
	}
	lvs := make([]float32, n)
	for i := range lvs {
		lvs[i] = ft.Range.ProjValue(float32(i) / float32(n-1))
	}
	return lvs
}

// Calibrate measures the given feature at each calibration level and
// builds a new [Profile]. It returns an error without a profile if the
// context is canceled or the measure hook fails, leaving any previous
// profile untouched.
func (cl *Calibrator) Calibrate(ctx context.Context, ft *feature.Feature, m Measure) (*Profile, error) {
	rounds := cl.Rounds
	if rounds < 1 {
		rounds = 1
	}
	var samples []Sample
	for _, lv := range cl.Levels(ft) {
		total := time.Duration(0)
		for r := 0; r < rounds; r++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			d, err := m(ctx, lv)
			if err != nil {
				return nil, err
			}
			if d < 0 {
				d = 0
			}
			total += d
		}
		samples = append(samples, Sample{Level: lv, Time: total / time.Duration(rounds)})
	}
	pr, err := Build(ft.Name, samples)
	if err != nil {
		return nil, err
	}
	slog.Debug("cost: calibrated feature", "feature", ft.Name, "levels", len(pr.Levels), "minCost", pr.Span.Min, "maxCost", pr.Span.Max)
	return pr, nil
}
