// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alloc solves the per-frame constrained allocation: given each
// feature's weight-curve target and cost profile, assign a concrete
// level to every feature so that the summed real-time cost fits the
// frame budget, tracking the targets as closely as possible. Features
// yield in ascending weight order, with registration order as the
// deterministic tie-break. The loop is bounded: each adjustment pass
// touches every feature at most once, and the number of passes is
// bounded by the total declared level count.
package alloc

//go:generate core generate

import (
	"math"
	"slices"
	"time"

	"cogentcore.org/adapt/cost"
	"cogentcore.org/adapt/feature"
)

// Policies control what happens with budget left over after every
// feature has reached its target-rounded level.
type Policies int32 //enums:enum

const (
	// FillBudget distributes leftover budget to discrete features in
	// descending weight order, raising one level at a time while it
	// still fits. Discretization can otherwise strand budget that a
	// high-priority feature could use.
	FillBudget Policies = iota

	// TrackCurve treats the weight-curve target as authoritative: the
	// allocator only ever reduces levels to fit the budget, never raises
	// them above target.
	TrackCurve
)

// budgetEps absorbs float32 rounding when comparing summed costs
// against the budget, in seconds.
const budgetEps = 1e-6

// Item is the allocator input for one feature in one frame.
type Item struct {
	// Feature is the registered feature.
	Feature *feature.Feature

	// Profile is the feature's current cost snapshot; nil until
	// calibration has run, which pins the feature to its minimum level.
	Profile *cost.Profile

	// Target is the normalized target level in [0,1] from the
	// feature's weight curve.
	Target float32

	// Weight is the feature's priority weight, sampled once for this
	// frame so concurrent weight updates cannot skew ordering mid-pass.
	Weight float32
}

// Assignment is a published per-frame level assignment. It is immutable
// once published; the renderer reads it for the duration of one frame.
type Assignment struct {
	// Levels is the concrete level per feature, indexed by registration
	// order, always within each feature's declared bounds.
	Levels []float32

	// Total is the projected real-time cost of this assignment.
	Total time.Duration

	// BudgetExceeded reports that even every feature at its minimum
	// level did not fit the budget; levels are clamped to minimum.
	BudgetExceeded bool

	// Frame is the frame number this assignment was computed for.
	Frame int
}

// Level returns the assigned level for the feature with the given
// registration index, or 0 if out of range.
func (as *Assignment) Level(i int) float32 {
	if i < 0 || i >= len(as.Levels) {
		return 0
	}
	return as.Levels[i]
}

// Allocator computes per-frame assignments. The zero value is usable.
// Scratch buffers are reused across frames; an Allocator is used from
// the single frame-loop goroutine.
type Allocator struct {
	// Policy selects the leftover-budget behavior, see [Policies].
	Policy Policies

	order []int
	idxs  []int
	times []float32
}

// Allocate computes the level assignment for one frame, given the
// per-feature items (in registration order) and the remaining frame
// time budget. It never fails: infeasible budgets clamp every feature
// to minimum and set [Assignment.BudgetExceeded].
func (al *Allocator) Allocate(items []Item, budget time.Duration, frame int) *Assignment {
	n := len(items)
	as := &Assignment{Frame: frame, Levels: make([]float32, n)}
	if n == 0 {
		return as
	}
	al.setup(n)
	bs := float32(budget.Seconds())

	total := al.provisional(items, as)

	demoted := false
	if total > bs+budgetEps {
		demoted = true
		total = al.reduce(items, as, total, bs)
	}
	if !demoted && al.Policy == FillBudget {
		total = al.promote(items, as, total, bs)
	}
	as.Total = secsDur(total)
	return as
}

func (al *Allocator) setup(n int) {
	al.order = slices.Grow(al.order[:0], n)[:n]
	al.idxs = slices.Grow(al.idxs[:0], n)[:n]
	al.times = slices.Grow(al.times[:0], n)[:n]
	for i := range al.order {
		al.order[i] = i
	}
}

// provisional assigns each feature the concrete level nearest its
// target and returns the summed projected cost in seconds.
func (al *Allocator) provisional(items []Item, as *Assignment) float32 {
	total := float32(0)
	for i := range items {
		it := &items[i]
		ft := it.Feature
		if it.Profile == nil {
			// uncalibrated: conservative fallback toward minimum
			if ft.Scale == feature.Discrete {
				al.idxs[i] = 0
			} else {
				al.idxs[i] = -1
			}
			as.Levels[i] = ft.MinLevel()
			al.times[i] = 0
			continue
		}
		if ft.Scale == feature.Discrete {
			al.idxs[i] = ft.Nearest(it.Target)
			as.Levels[i] = ft.Level(al.idxs[i])
		} else {
			al.idxs[i] = -1
			as.Levels[i] = ft.Proj(it.Target)
		}
		al.times[i] = float32(it.Profile.Time(as.Levels[i]).Seconds())
		total += al.times[i]
	}
	return total
}

// reduce lowers levels in ascending weight order until the total fits
// the budget. Continuous features shrink exactly to close the gap;
// discrete features drop one level per pass, redistributing any
// overshoot onto the next feature in priority order. If a full pass
// makes no change the budget is infeasible: everything is clamped to
// minimum and the exceeded flag is set.
func (al *Allocator) reduce(items []Item, as *Assignment, total, bs float32) float32 {
	slices.SortStableFunc(al.order, func(a, b int) int {
		switch {
		case items[a].Weight < items[b].Weight:
			return -1
		case items[a].Weight > items[b].Weight:
			return 1
		}
		return a - b
	})

	for total > bs+budgetEps {
		changed := false
		for _, i := range al.order {
			if total <= bs+budgetEps {
				break
			}
			it := &items[i]
			ft := it.Feature
			if it.Profile == nil {
				continue
			}
			if ft.Scale == feature.Discrete {
				if al.idxs[i] <= 0 {
					continue
				}
				al.idxs[i]--
				lv := ft.Level(al.idxs[i])
				nt := float32(it.Profile.Time(lv).Seconds())
				total += nt - al.times[i]
				al.times[i] = nt
				as.Levels[i] = lv
				changed = true
				continue
			}
			if as.Levels[i] <= ft.MinLevel() {
				continue
			}
			need := total - bs
			want := al.times[i] - need
			lv := ft.ClampLevel(it.Profile.LevelForTime(secsDur(want)))
			if lv >= as.Levels[i] {
				lv = ft.MinLevel()
			}
			nt := float32(it.Profile.Time(lv).Seconds())
			total += nt - al.times[i]
			al.times[i] = nt
			as.Levels[i] = lv
			changed = true
		}
		if total <= bs+budgetEps {
			break
		}
		if !changed {
			as.BudgetExceeded = true
			break
		}
	}
	return total
}

// promote distributes leftover budget to discrete features in
// descending weight order (registration order breaking ties), raising
// one level at a time while the result still fits.
func (al *Allocator) promote(items []Item, as *Assignment, total, bs float32) float32 {
	slices.SortStableFunc(al.order, func(a, b int) int {
		switch {
		case items[a].Weight > items[b].Weight:
			return -1
		case items[a].Weight < items[b].Weight:
			return 1
		}
		return a - b
	})

	for {
		raised := false
		for _, i := range al.order {
			it := &items[i]
			ft := it.Feature
			if it.Profile == nil || ft.Scale != feature.Discrete {
				continue
			}
			if al.idxs[i] >= len(ft.Levels)-1 {
				continue
			}
			lv := ft.Level(al.idxs[i] + 1)
			nt := float32(it.Profile.Time(lv).Seconds())
			if total-al.times[i]+nt > bs {
				continue
			}
			al.idxs[i]++
			total += nt - al.times[i]
			al.times[i] = nt
			as.Levels[i] = lv
			raised = true
		}
		if !raised {
			break
		}
	}
	return total
}

func secsDur(s float32) time.Duration {
	if s < 0 {
		s = 0
	}
	return time.Duration(math.Round(float64(s) * float64(time.Second)))
}
