// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adapt

import (
	"time"

	"cogentcore.org/adapt/alloc"
	"cogentcore.org/adapt/cost"
	"cogentcore.org/adapt/curve"
	"cogentcore.org/adapt/feature"
	"cogentcore.org/adapt/perf"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/math32/minmax"
)

// Options are the user-configurable settings of a [Controller].
// Call [Controller.Config] after changing them.
type Options struct {
	// TargetFPS is the target frame rate; the per-frame time budget is
	// derived from it.
	TargetFPS float32 `default:"60"`

	// Overhead is per-frame time already committed to non-adjustable
	// work (e.g., compositor handoff); it is subtracted from the budget
	// before allocation.
	Overhead time.Duration

	// Smoothing is the EMA weight for new frame samples, see
	// [perf.Monitor].
	Smoothing float32 `default:"0.2"`

	// PGain is the proportional gain of the quality signal.
	PGain float32 `default:"4"`

	// IGain is the integral gain of the quality signal.
	IGain float32 `default:"0.5"`

	// Curve selects the weight-curve family used for all features.
	Curve curve.Types

	// Logistic holds the parameters used when Curve is
	// [curve.LogisticType].
	Logistic curve.Logistic

	// Conic holds the parameters used when Curve is [curve.ConicType].
	Conic curve.Conic

	// Policy selects the leftover-budget behavior of the allocator.
	Policy alloc.Policies

	// WeightRange is the range feature weights are clamped to.
	WeightRange minmax.F32

	// Calibration holds the calibration sweep settings.
	Calibration cost.Calibrator
}

func (op *Options) Defaults() {
	op.TargetFPS = 60
	op.Overhead = 0
	op.Smoothing = 0.2
	op.PGain = 4
	op.IGain = 0.5
	op.Curve = curve.LogisticType
	op.Logistic.Defaults()
	op.Conic.Defaults()
	op.Policy = alloc.FillBudget
	op.WeightRange = feature.DefaultWeightRange
	op.Calibration.Defaults()
}

// FrameTime returns the target frame duration derived from TargetFPS.
func (op *Options) FrameTime() time.Duration {
	if op.TargetFPS <= 0 {
		return time.Second / 60
	}
	return time.Duration(float64(time.Second) / float64(op.TargetFPS))
}

// Budget returns the time available for adjustable work per frame:
// the frame time minus the committed overhead.
func (op *Options) Budget() time.Duration {
	return op.FrameTime() - op.Overhead
}

// NewCurve returns a new [curve.Curve] configured per these options.
func (op *Options) NewCurve() curve.Curve {
	switch op.Curve {
	case curve.ConicType:
		cn := op.Conic
		return &cn
	default:
		lc := op.Logistic
		return &lc
	}
}

// ConfigMonitor configures the given monitor per these options.
func (op *Options) ConfigMonitor(pm *perf.Monitor) {
	pm.SetTargetFPS(op.TargetFPS)
	pm.Smoothing = op.Smoothing
	pm.PGain = op.PGain
	pm.IGain = op.IGain
}

// Open loads the options from the given TOML file.
func (op *Options) Open(filename string) error {
	return tomlx.Open(op, filename)
}

// Save saves the options to the given TOML file.
func (op *Options) Save(filename string) error {
	return tomlx.Save(op, filename)
}
