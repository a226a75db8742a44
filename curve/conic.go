// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "github.com/chewxy/math32"

// Conic is the conic-section weight curve: one branch of the hyperbola
// y = x / sqrt(x^2 + c), rescaled from (-1,1) to (0,1):
//
//	level = (1 + x/sqrt(x^2 + c)) / 2,  x = signal + Gain*weight
//
// where c = 1/Eccentricity^2. Unlike [Logistic] it approaches its
// asymptotes polynomially rather than exponentially, so levels keep
// responding measurably even far from the transition point.
// Eccentricity sharpens the transition as it grows.
type Conic struct {
	// Eccentricity is the sharpness of the transition. Must be > 0.
	Eccentricity float32 `default:"1"`

	// Gain scales the weight's shift of the transition point.
	Gain float32 `default:"2"`
}

func (cn *Conic) Defaults() {
	cn.Eccentricity = 1
	cn.Gain = 2
}

func (cn *Conic) Level(signal, weight float32) float32 {
	x := signal + cn.Gain*weight
	c := 1 / (cn.Eccentricity * cn.Eccentricity)
	return (1 + x/math32.Sqrt(x*x+c)) / 2
}
