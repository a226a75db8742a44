// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package feature defines the independently tunable quality axes of an
// adaptive renderer (resolution, LOD, shadow detail, etc), each with a
// continuous or discrete level scale and a user-configurable priority
// weight. Features are registered once at startup and are immutable for
// the lifetime of the renderer, except for the weight, which may be
// updated from any goroutine at any time.
package feature

//go:generate core generate

import (
	"math"
	"sync/atomic"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// DefaultWeightRange is the range that feature weights are clamped to
// unless [Feature.WeightRange] is set otherwise.
var DefaultWeightRange = minmax.F32{Min: -1, Max: 1}

// ScaleKinds are the kinds of level scales a [Feature] can have.
type ScaleKinds int32 //enums:enum

const (
	// Continuous features take any level value within a declared range,
	// e.g., a resolution scale factor.
	Continuous ScaleKinds = iota

	// Discrete features take one of a finite, ordered set of level values,
	// e.g., MSAA sample counts, where intermediate values do not exist.
	Discrete
)

// Feature describes one tunable quality axis. Use [NewContinuous] or
// [NewDiscrete] to make one; the scale kind is fixed for its lifetime.
type Feature struct {
	// Name is the unique identity of the feature.
	Name string

	// Scale is the kind of level scale (continuous range or discrete set).
	Scale ScaleKinds

	// Range is the declared level range for [Continuous] features.
	Range minmax.F32

	// Levels is the ascending ordered set of level values for
	// [Discrete] features.
	Levels []float32

	// Index is the registration order index, assigned by the controller.
	// It is the deterministic tie-break for equal weights.
	Index int

	// WeightRange is the range that [Feature.SetWeight] clamps to.
	// Defaults to [DefaultWeightRange].
	WeightRange minmax.F32

	// weight is the user priority weight, stored as float32 bits so it
	// can be updated from a settings goroutine while the frame loop reads it.
	weight atomic.Uint32
}

// NewContinuous returns a new [Continuous] feature spanning the given
// level range. If max < min the two are swapped.
func NewContinuous(name string, min, max float32) *Feature {
	if max < min {
		min, max = max, min
	}
	ft := &Feature{Name: name, Scale: Continuous, WeightRange: DefaultWeightRange}
	ft.Range.Set(min, max)
	return ft
}

// NewDiscrete returns a new [Discrete] feature with the given ordered
// level values, which must be ascending. At least one level is required;
// nil is returned otherwise.
func NewDiscrete(name string, levels ...float32) *Feature {
	if len(levels) == 0 {
		return nil
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] < levels[i-1] {
			return nil
		}
	}
	ft := &Feature{Name: name, Scale: Discrete, Levels: levels, WeightRange: DefaultWeightRange}
	ft.Range.Set(levels[0], levels[len(levels)-1])
	return ft
}

// Weight returns the current user priority weight.
func (ft *Feature) Weight() float32 {
	return math.Float32frombits(ft.weight.Load())
}

// SetWeight sets the user priority weight, clamping it to
// [Feature.WeightRange]. Safe to call from any goroutine.
func (ft *Feature) SetWeight(w float32) *Feature {
	ft.weight.Store(math.Float32bits(ft.WeightRange.ClampValue(w)))
	return ft
}

// MinLevel returns the minimum level value.
func (ft *Feature) MinLevel() float32 {
	return ft.Range.Min
}

// MaxLevel returns the maximum level value.
func (ft *Feature) MaxLevel() float32 {
	return ft.Range.Max
}

// ClampLevel clamps the given level value within the declared bounds.
func (ft *Feature) ClampLevel(v float32) float32 {
	return ft.Range.ClampValue(v)
}

// NumLevels returns the number of declared levels for [Discrete]
// features, and 0 for [Continuous] ones.
func (ft *Feature) NumLevels() int {
	if ft.Scale == Discrete {
		return len(ft.Levels)
	}
	return 0
}

// Level returns the level value at the given index for [Discrete]
// features, clamping the index to the valid range.
func (ft *Feature) Level(i int) float32 {
	n := len(ft.Levels)
	if i < 0 {
		i = 0
	} else if i >= n {
		i = n - 1
	}
	return ft.Levels[i]
}

// Norm returns the normalized position in [0,1] of the given level value
// within this feature's level space. For [Discrete] features it is the
// position of the nearest declared level. A degenerate scale (zero-width
// range, single level) returns 0.
func (ft *Feature) Norm(level float32) float32 {
	switch ft.Scale {
	case Discrete:
		n := len(ft.Levels)
		if n < 2 {
			return 0
		}
		return float32(ft.LevelIndex(level)) / float32(n-1)
	default:
		return ft.Range.ClipNormValue(level)
	}
}

// Proj projects a normalized position in [0,1] onto a concrete level
// value: linear projection within the range for [Continuous] features,
// and the nearest declared level for [Discrete] ones. The result is
// always within the declared bounds.
func (ft *Feature) Proj(t float32) float32 {
	t = math32.Clamp(t, 0, 1)
	if ft.Scale == Discrete {
		return ft.Levels[ft.Nearest(t)]
	}
	return ft.Range.ProjValue(t)
}

// Nearest returns the index of the declared level nearest to the given
// normalized position in [0,1], for [Discrete] features.
func (ft *Feature) Nearest(t float32) int {
	n := len(ft.Levels)
	if n < 2 {
		return 0
	}
	i := int(math32.Round(math32.Clamp(t, 0, 1) * float32(n-1)))
	if i >= n {
		i = n - 1
	}
	return i
}

// LevelIndex returns the index of the declared level nearest in value to
// the given level, for [Discrete] features.
func (ft *Feature) LevelIndex(level float32) int {
	best := 0
	bd := math32.Abs(ft.Levels[0] - level)
	for i := 1; i < len(ft.Levels); i++ {
		d := math32.Abs(ft.Levels[i] - level)
		if d < bd {
			bd = d
			best = i
		}
	}
	return best
}

func (ft *Feature) String() string {
	return ft.Name
}
