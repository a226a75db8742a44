// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestContinuous(t *testing.T) {
	ft := NewContinuous("resolution", 0.25, 1)
	assert.Equal(t, Continuous, ft.Scale)
	assert.Equal(t, float32(0.25), ft.MinLevel())
	assert.Equal(t, float32(1), ft.MaxLevel())

	tolassert.Equal(t, 0.625, ft.Proj(0.5))
	assert.Equal(t, float32(0.25), ft.Proj(-2))
	assert.Equal(t, float32(1), ft.Proj(3))
	tolassert.Equal(t, 0.5, ft.Norm(0.625))
	assert.Equal(t, float32(0), ft.Norm(0.1))
	assert.Equal(t, float32(1), ft.Norm(2))

	assert.Equal(t, float32(0.25), ft.ClampLevel(0.1))
	assert.Equal(t, float32(1), ft.ClampLevel(1.5))
	assert.Equal(t, float32(0.7), ft.ClampLevel(0.7))
}

func TestContinuousSwapped(t *testing.T) {
	ft := NewContinuous("lod", 4, 1)
	assert.Equal(t, float32(1), ft.MinLevel())
	assert.Equal(t, float32(4), ft.MaxLevel())
}

func TestDiscrete(t *testing.T) {
	ft := NewDiscrete("msaa", 0, 2, 4, 8)
	assert.Equal(t, Discrete, ft.Scale)
	assert.Equal(t, 4, ft.NumLevels())
	assert.Equal(t, float32(0), ft.MinLevel())
	assert.Equal(t, float32(8), ft.MaxLevel())

	assert.Equal(t, 0, ft.Nearest(0))
	assert.Equal(t, 1, ft.Nearest(0.34))
	assert.Equal(t, 2, ft.Nearest(0.66))
	assert.Equal(t, 3, ft.Nearest(1))
	assert.Equal(t, float32(4), ft.Proj(0.66))

	assert.Equal(t, 2, ft.LevelIndex(5))
	assert.Equal(t, 3, ft.LevelIndex(7))
	tolassert.Equal(t, 2.0/3.0, ft.Norm(4))

	assert.Equal(t, float32(0), ft.Level(-1))
	assert.Equal(t, float32(8), ft.Level(12))
}

func TestDiscreteInvalid(t *testing.T) {
	assert.Nil(t, NewDiscrete("empty"))
	assert.Nil(t, NewDiscrete("unsorted", 2, 1))
}

func TestDiscreteSingle(t *testing.T) {
	ft := NewDiscrete("shadows", 1)
	assert.Equal(t, 1, ft.NumLevels())
	assert.Equal(t, float32(1), ft.Proj(0.5))
	assert.Equal(t, float32(0), ft.Norm(1))
}

func TestWeight(t *testing.T) {
	ft := NewContinuous("resolution", 0, 1)
	assert.Equal(t, float32(0), ft.Weight())

	ft.SetWeight(0.8)
	assert.Equal(t, float32(0.8), ft.Weight())

	// out-of-range weights clamp silently
	ft.SetWeight(3)
	assert.Equal(t, float32(1), ft.Weight())
	ft.SetWeight(-3)
	assert.Equal(t, float32(-1), ft.Weight())
}

func TestScaleKindsString(t *testing.T) {
	assert.Equal(t, "continuous", Continuous.String())
	var sk ScaleKinds
	assert.NoError(t, sk.SetString("discrete"))
	assert.Equal(t, Discrete, sk)
	assert.Error(t, sk.SetString("fancy"))
}
