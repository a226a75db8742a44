// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "github.com/chewxy/math32"

// Logistic is the standard logistic sigmoid weight curve:
//
//	level = 1 / (1 + exp(-(Slope*signal + Gain*weight)))
//
// Slope sets how quickly the level transitions as the signal moves, and
// Gain sets how far the weight shifts the transition point along the
// signal axis: a high-weight feature holds full quality deeper into a
// deficit, a low-weight one yields sooner.
type Logistic struct {
	// Slope is the steepness of the transition. Must be > 0.
	Slope float32 `default:"1"`

	// Gain scales the weight's shift of the transition point.
	Gain float32 `default:"2"`
}

func (lc *Logistic) Defaults() {
	lc.Slope = 1
	lc.Gain = 2
}

func (lc *Logistic) Level(signal, weight float32) float32 {
	return 1 / (1 + math32.Exp(-(lc.Slope*signal + lc.Gain*weight)))
}
