// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func newMonitor() *Monitor {
	pm := &Monitor{}
	pm.Defaults()
	return pm
}

func TestSignalSign(t *testing.T) {
	pm := newMonitor()
	pm.SetTargetFPS(60)

	// frames faster than target: positive signal (headroom)
	sig := pm.Observe(10 * time.Millisecond)
	assert.Greater(t, sig, float32(0))

	pm.Reset()

	// frames slower than target: negative signal (deficit)
	sig = pm.Observe(30 * time.Millisecond)
	assert.Less(t, sig, float32(0))
}

func TestGlitchRejected(t *testing.T) {
	pm := newMonitor()
	pm.Observe(10 * time.Millisecond)
	before := pm.Signal()

	assert.Equal(t, before, pm.Observe(0))
	assert.Equal(t, before, pm.Observe(-5*time.Millisecond))
	assert.Equal(t, before, pm.Signal())
	assert.Equal(t, 1, pm.Frames())
}

func TestSmoothing(t *testing.T) {
	pm := newMonitor()
	pm.Observe(10 * time.Millisecond)
	assert.Equal(t, 10*time.Millisecond, pm.Smoothed())

	// one outlier moves the smoothed estimate only fractionally
	pm.Observe(100 * time.Millisecond)
	sm := pm.Smoothed()
	assert.Greater(t, sm, 10*time.Millisecond)
	assert.Less(t, sm, 30*time.Millisecond)
}

// if measured duration equals target every frame, the signal converges
// to a stable value within a bounded number of frames.
func TestStability(t *testing.T) {
	pm := newMonitor()
	target := pm.Target
	for i := 0; i < 200; i++ {
		pm.Observe(target)
	}
	stable := pm.Signal()
	for i := 0; i < 50; i++ {
		pm.Observe(target)
	}
	tolassert.EqualTol(t, stable, pm.Signal(), 1e-3)
}

func TestSignalGrowsWithDeficit(t *testing.T) {
	pm := newMonitor()
	pm.SetTarget(16 * time.Millisecond)
	// sustained over-budget frames accumulate deficit without bound
	pm.Observe(32 * time.Millisecond)
	s1 := pm.Signal()
	for i := 0; i < 100; i++ {
		pm.Observe(32 * time.Millisecond)
	}
	assert.Less(t, pm.Signal(), s1)
}

func TestLog(t *testing.T) {
	lg := NewLog("sync", "draw", "post")

	for i := 0; i < 3; i++ {
		lg.StartFrame()
		lg.Phase("sync")
		lg.Phase("draw")
		lg.Phase("bogus") // unknown: ignored
		lg.Phase("post")
		lg.EndFrame(0.5)
	}
	assert.Equal(t, 3, len(lg.Entries))
	e := &lg.Entries[2]
	assert.Equal(t, 2, e.Frame)
	assert.Equal(t, 3, len(e.Phases))
	assert.Equal(t, float32(0.5), e.Signal)
	assert.GreaterOrEqual(t, e.Idle(), time.Duration(0))
}

func TestLogMaxEntries(t *testing.T) {
	lg := NewLog("draw")
	lg.MaxEntries = 2
	for i := 0; i < 5; i++ {
		lg.StartFrame()
		lg.Phase("draw")
		lg.EndFrame(0)
	}
	assert.Equal(t, 2, len(lg.Entries))
}

func TestLogCSV(t *testing.T) {
	lg := NewLog("sync", "draw")
	lg.StartFrame()
	lg.Phase("sync")
	lg.Phase("draw")
	lg.EndFrame(1.5)

	fn := filepath.Join(t.TempDir(), "frames.csv")
	assert.NoError(t, lg.SaveCSV(fn))

	b, err := os.ReadFile(fn)
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, "Frame,FPS,sync,draw,Idle,Signal", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,"))
}
