// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adapt implements an adaptive quality controller for
// renderers: a per-frame feedback loop that assigns quality levels to
// independent rendering features (resolution, LOD, shadow detail, etc)
// so that frame time tracks a target budget, respecting user priority
// weights and each feature's measured cost.
//
// The per-frame loop is synchronous and bounded: [Controller.FrameDone]
// consumes the previous frame's measured duration, updates the global
// quality signal, maps it through each feature's weight curve, runs the
// budget allocator, and publishes the new assignment to the registry,
// where the renderer reads it for the next frame. Calibration is the
// one concurrent operation: it measures costs off the hot path and
// swaps the resulting profile in atomically.
package adapt

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"cogentcore.org/adapt/alloc"
	"cogentcore.org/adapt/cost"
	"cogentcore.org/adapt/curve"
	"cogentcore.org/adapt/feature"
	"cogentcore.org/adapt/perf"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/keylist"
)

// Controller is the adaptive quality controller. Make one with
// [NewController], register features at startup with
// [Controller.AddContinuous] and [Controller.AddDiscrete], then call
// [Controller.FrameDone] once per frame with the measured duration of
// the frame just completed.
type Controller struct {
	// Options are the user-configurable settings; call
	// [Controller.Config] after changing them.
	Options Options

	// Monitor maintains the global quality signal.
	Monitor perf.Monitor

	// Curve is the weight curve shared by all features, per
	// [Options.Curve].
	Curve curve.Curve

	// Allocator computes the per-frame level assignment.
	Allocator alloc.Allocator

	// Registry holds the currently published assignment for the
	// renderer.
	Registry Registry

	// Features is the ordered registry of features, in registration
	// order. Register through the Add methods; treat as read-only.
	Features keylist.List[string, *feature.Feature]

	// ExceededFrames counts frames where even minimum levels did not
	// fit the budget.
	ExceededFrames int

	profiles []*atomic.Pointer[cost.Profile]
	items    []alloc.Item
	frame    int
}

// NewController returns a new [Controller] with default options.
func NewController() *Controller {
	c := &Controller{}
	c.Options.Defaults()
	c.Config()
	return c
}

// Config applies [Controller.Options] to the monitor, curve, and
// allocator. Feature weight ranges are fixed at registration time and
// are not affected.
func (c *Controller) Config() {
	c.Options.ConfigMonitor(&c.Monitor)
	c.Curve = c.Options.NewCurve()
	c.Allocator.Policy = c.Options.Policy
}

// AddContinuous registers a continuous feature spanning the given level
// range, with the given initial weight. Features must be registered at
// startup, before the frame loop runs.
func (c *Controller) AddContinuous(name string, min, max, weight float32) *feature.Feature {
	return c.addFeature(feature.NewContinuous(name, min, max), weight)
}

// AddDiscrete registers a discrete feature with the given ascending
// level values and initial weight. Returns nil if no levels are given.
func (c *Controller) AddDiscrete(name string, weight float32, levels ...float32) *feature.Feature {
	ft := feature.NewDiscrete(name, levels...)
	if ft == nil {
		errors.Log(errors.New("adapt: discrete feature needs at least one ascending level: " + name))
		return nil
	}
	return c.addFeature(ft, weight)
}

func (c *Controller) addFeature(ft *feature.Feature, weight float32) *feature.Feature {
	ft.Index = c.Features.Len()
	ft.WeightRange = c.Options.WeightRange
	ft.SetWeight(weight)
	if err := c.Features.Add(ft.Name, ft); err != nil {
		errors.Log(err)
		return c.Features.At(ft.Name)
	}
	c.profiles = append(c.profiles, &atomic.Pointer[cost.Profile]{})
	return ft
}

// Feature returns the registered feature with the given name, or nil.
func (c *Controller) Feature(name string) *feature.Feature {
	ft, _ := c.Features.AtTry(name)
	return ft
}

// SetWeight sets the priority weight of the named feature, clamped to
// the configured weight range. Safe to call from any goroutine at any
// time.
func (c *Controller) SetWeight(name string, w float32) {
	if ft := c.Feature(name); ft != nil {
		ft.SetWeight(w)
	}
}

// Profile returns the current cost profile of the named feature, or
// nil if it has not been calibrated.
func (c *Controller) Profile(name string) *cost.Profile {
	i := c.Features.IndexByKey(name)
	if i < 0 {
		return nil
	}
	return c.profiles[i].Load()
}

// SetProfile atomically installs a cost profile for the named feature.
// The previous snapshot remains valid for any frame already reading it.
func (c *Controller) SetProfile(name string, pr *cost.Profile) {
	i := c.Features.IndexByKey(name)
	if i < 0 {
		errors.Log(errors.New("adapt: SetProfile: no feature named " + name))
		return
	}
	c.profiles[i].Store(pr)
}

// Calibrate measures the named feature through the given hook, builds
// a new cost profile, and installs it atomically. It is safe to run
// concurrently with the frame loop (typically in a goroutine or spread
// between frames); if the context is canceled the previous profile
// stays in use and the error is returned.
func (c *Controller) Calibrate(ctx context.Context, name string, m cost.Measure) error {
	ft := c.Feature(name)
	if ft == nil {
		return errors.New("adapt: Calibrate: no feature named " + name)
	}
	pr, err := c.Options.Calibration.Calibrate(ctx, ft, m)
	if err != nil {
		slog.Warn("adapt: calibration aborted, keeping previous profile", "feature", name, "err", err)
		return err
	}
	c.SetProfile(name, pr)
	return nil
}

// FrameDone runs the per-frame control loop: it consumes the measured
// duration of the frame just completed, updates the global quality
// signal, allocates levels for the next frame within the budget, and
// publishes the assignment. It returns the published assignment, which
// is also available from [Controller.Assignment]. Zero or negative
// durations are discarded as measurement glitches.
func (c *Controller) FrameDone(measured time.Duration) *alloc.Assignment {
	signal := c.Monitor.Observe(measured)

	n := c.Features.Len()
	if cap(c.items) < n {
		c.items = make([]alloc.Item, n)
	}
	c.items = c.items[:n]
	for i, ft := range c.Features.Values {
		w := ft.Weight()
		c.items[i] = alloc.Item{
			Feature: ft,
			Profile: c.profiles[i].Load(),
			Target:  c.Curve.Level(signal, w),
			Weight:  w,
		}
	}

	as := c.Allocator.Allocate(c.items, c.Options.Budget(), c.frame)
	c.frame++
	if as.BudgetExceeded {
		c.ExceededFrames++
		slog.Debug("adapt: budget exceeded even at minimum levels", "frame", as.Frame, "total", as.Total, "budget", c.Options.Budget())
	}
	c.Registry.Publish(as)
	return as
}

// Assignment returns the currently published assignment. Levels are
// indexed by feature registration order; see [Controller.Level] for
// by-name access. Never nil.
func (c *Controller) Assignment() *alloc.Assignment {
	return c.Registry.Current()
}

// Level returns the currently assigned level for the named feature,
// falling back to the feature's minimum if no assignment covers it.
func (c *Controller) Level(name string) float32 {
	i := c.Features.IndexByKey(name)
	if i < 0 {
		return 0
	}
	as := c.Registry.Current()
	if i >= len(as.Levels) {
		return c.Features.Values[i].MinLevel()
	}
	return as.Level(i)
}
