// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perf turns raw per-frame durations into the global quality
// signal that drives adaptive level selection. The signal is a scalar,
// unbounded in both directions: positive when recent frames are faster
// than the target duration (headroom, levels should rise), negative
// when slower (deficit, levels should fall). Saturation happens later,
// in the weight curves, never here.
package perf

import (
	"math"
	"time"
)

// Monitor ingests the measured duration of each completed frame and
// maintains the global quality signal. It is used from the single
// frame-loop goroutine; frame N's signal is always computed from the
// sample of frame N-1.
type Monitor struct {
	// Target is the target frame duration (the budget the signal
	// tracks). Use [Monitor.SetTargetFPS] to derive it from a rate.
	Target time.Duration

	// Smoothing is the exponential moving average weight given to each
	// new frame sample, in (0,1]. 1 = no smoothing.
	Smoothing float32 `default:"0.2"`

	// PGain multiplies the instantaneous normalized error in the signal.
	PGain float32 `default:"4"`

	// IGain multiplies the accumulated normalized error in the signal,
	// providing the drift that keeps pushing levels while frames remain
	// off target.
	IGain float32 `default:"0.5"`

	// smoothed is the EMA of frame duration in seconds.
	smoothed float32

	// integral is the accumulated normalized error.
	integral float32

	// signal is the current global quality signal.
	signal float32

	// frames is the number of accepted samples.
	frames int
}

func (pm *Monitor) Defaults() {
	pm.Target = time.Second / 60
	pm.Smoothing = 0.2
	pm.PGain = 4
	pm.IGain = 0.5
}

// SetTarget sets the target frame duration.
func (pm *Monitor) SetTarget(d time.Duration) {
	pm.Target = d
}

// SetTargetFPS sets the target frame duration from a target frame rate.
func (pm *Monitor) SetTargetFPS(fps float32) {
	pm.Target = time.Duration(float64(time.Second) / float64(fps))
}

// Observe consumes the measured duration of the just-completed frame,
// updates the smoothed estimate and the global quality signal, and
// returns the new signal. A zero or negative duration is a measurement
// glitch: it is discarded and the previous signal returned unchanged.
func (pm *Monitor) Observe(frame time.Duration) float32 {
	if frame <= 0 || pm.Target <= 0 {
		return pm.signal
	}
	secs := float32(frame.Seconds())
	if pm.frames == 0 {
		pm.smoothed = secs
	} else {
		pm.smoothed += pm.Smoothing * (secs - pm.smoothed)
	}
	pm.frames++

	target := float32(pm.Target.Seconds())
	err := (target - pm.smoothed) / target
	pm.integral += err
	pm.signal = pm.PGain*err + pm.IGain*pm.integral
	return pm.signal
}

// Signal returns the current global quality signal without updating it.
func (pm *Monitor) Signal() float32 {
	return pm.signal
}

// Smoothed returns the current smoothed frame duration estimate.
func (pm *Monitor) Smoothed() time.Duration {
	return time.Duration(math.Round(float64(pm.smoothed) * float64(time.Second)))
}

// Frames returns the number of accepted frame samples.
func (pm *Monitor) Frames() int {
	return pm.frames
}

// Reset clears all accumulated state.
func (pm *Monitor) Reset() {
	pm.smoothed = 0
	pm.integral = 0
	pm.signal = 0
	pm.frames = 0
}
