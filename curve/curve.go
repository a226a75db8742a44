// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve provides the weight-curve family that maps the global
// quality signal to a normalized target level for one feature, biased
// by that feature's priority weight.
//
// Every curve satisfies the same contract: the result is in [0,1],
// strictly increasing in the signal for a fixed weight, continuous in
// both arguments, and saturates to 1 as the signal goes to +infinity
// and to 0 as it goes to -infinity, for every valid weight. The weight
// only shifts where along the signal axis the transition happens, so
// any feature eventually reaches full quality given enough headroom,
// and minimum quality given enough deficit.
package curve

//go:generate core generate

// Curve maps the global quality signal and a feature weight to a
// normalized target level in [0,1].
type Curve interface {
	// Level returns the target normalized level for the given global
	// quality signal (positive = headroom, negative = deficit) and
	// feature weight.
	Level(signal, weight float32) float32
}

// Types are the available weight-curve implementations.
type Types int32 //enums:enum

const (
	// LogisticType is the standard logistic sigmoid, see [Logistic].
	LogisticType Types = iota

	// ConicType is the conic-section (hyperbola branch) sigmoid,
	// see [Conic].
	ConicType
)

// New returns a new [Curve] of the given type, with default parameters.
func New(typ Types) Curve {
	switch typ {
	case ConicType:
		cn := &Conic{}
		cn.Defaults()
		return cn
	default:
		lc := &Logistic{}
		lc.Defaults()
		return lc
	}
}
