// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alloc

import (
	"testing"
	"time"

	"cogentcore.org/adapt/cost"
	"cogentcore.org/adapt/feature"
	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

// linearProfile is a continuous feature whose cost is perLevel per
// unit of level, e.g., 10ms/level over [0,1].
func linearProfile(t *testing.T, ft *feature.Feature, perLevel time.Duration) *cost.Profile {
	t.Helper()
	pr, err := cost.Build(ft.Name, []cost.Sample{
		{Level: ft.MinLevel(), Time: time.Duration(float64(perLevel) * float64(ft.MinLevel()))},
		{Level: ft.MaxLevel(), Time: time.Duration(float64(perLevel) * float64(ft.MaxLevel()))},
	})
	assert.NoError(t, err)
	return pr
}

func tableProfile(t *testing.T, ft *feature.Feature, times ...time.Duration) *cost.Profile {
	t.Helper()
	var ss []cost.Sample
	for i, d := range times {
		ss = append(ss, cost.Sample{Level: ft.Level(i), Time: d})
	}
	pr, err := cost.Build(ft.Name, ss)
	assert.NoError(t, err)
	return pr
}

const budgetTol = 100 * time.Microsecond

// the two-feature scenario: continuous A with linear 10ms cost and
// high weight, discrete B costing {0,4,9}ms with low weight, 12ms
// budget. On budget, A sits near its curve target and B fits in the
// remainder at level 1; in severe deficit both go to minimum.
func TestScenario(t *testing.T) {
	fa := feature.NewContinuous("resolution", 0, 1)
	fa.Index = 0
	fb := feature.NewDiscrete("msaa", 0, 1, 2)
	fb.Index = 1

	pa := linearProfile(t, fa, 10*time.Millisecond)
	pb := tableProfile(t, fb, 0, 4*time.Millisecond, 9*time.Millisecond)

	al := &Allocator{}
	items := []Item{
		{Feature: fa, Profile: pa, Target: 0.7, Weight: 0.8},
		{Feature: fb, Profile: pb, Target: 0.6, Weight: 0.2},
	}
	as := al.Allocate(items, 12*time.Millisecond, 0)

	assert.False(t, as.BudgetExceeded)
	tolassert.Equal(t, 0.7, as.Level(0))
	assert.Equal(t, float32(1), as.Level(1))
	assert.LessOrEqual(t, as.Total, 12*time.Millisecond+budgetTol)
	tolassert.EqualTol(t, 11, float32(as.Total.Seconds()*1000), 0.01)

	// severe deficit: both trend to minimum
	items[0].Target = 0
	items[1].Target = 0
	as = al.Allocate(items, 12*time.Millisecond, 1)
	assert.Equal(t, float32(0), as.Level(0))
	assert.Equal(t, float32(0), as.Level(1))
}

func TestReduce(t *testing.T) {
	fa := feature.NewContinuous("resolution", 0, 1)
	fa.Index = 0
	fb := feature.NewDiscrete("msaa", 0, 1, 2)
	fb.Index = 1

	pa := linearProfile(t, fa, 10*time.Millisecond)
	pb := tableProfile(t, fb, 0, 4*time.Millisecond, 9*time.Millisecond)

	al := &Allocator{}
	items := []Item{
		{Feature: fa, Profile: pa, Target: 0.9, Weight: 0.8},
		{Feature: fb, Profile: pb, Target: 1, Weight: 0.2},
	}
	// 9 + 9 = 18ms > 10ms: B yields first (lower weight), dropping
	// exactly one level (9 -> 4ms); A then shrinks precisely to close
	// the remaining gap.
	as := al.Allocate(items, 10*time.Millisecond, 0)

	assert.False(t, as.BudgetExceeded)
	assert.Equal(t, float32(1), as.Level(1))
	tolassert.EqualTol(t, 0.6, as.Level(0), 1e-3)
	assert.LessOrEqual(t, as.Total, 10*time.Millisecond+budgetTol)
}

func TestInfeasible(t *testing.T) {
	fa := feature.NewContinuous("resolution", 0.5, 1)
	fa.Index = 0
	fb := feature.NewDiscrete("msaa", 0, 1)
	fb.Index = 1

	// even at minimum levels, 2ms + 1ms > 1ms budget
	pa, err := cost.Build("resolution", []cost.Sample{
		{Level: 0.5, Time: 2 * time.Millisecond},
		{Level: 1, Time: 8 * time.Millisecond},
	})
	assert.NoError(t, err)
	pb := tableProfile(t, fb, time.Millisecond, 5*time.Millisecond)

	al := &Allocator{}
	items := []Item{
		{Feature: fa, Profile: pa, Target: 1, Weight: 0},
		{Feature: fb, Profile: pb, Target: 1, Weight: 0},
	}
	as := al.Allocate(items, time.Millisecond, 0)

	assert.True(t, as.BudgetExceeded)
	assert.Equal(t, float32(0.5), as.Level(0))
	assert.Equal(t, float32(0), as.Level(1))
}

func TestUncalibrated(t *testing.T) {
	fa := feature.NewContinuous("resolution", 0.25, 1)
	fa.Index = 0

	al := &Allocator{}
	items := []Item{{Feature: fa, Profile: nil, Target: 1, Weight: 1}}
	as := al.Allocate(items, 10*time.Millisecond, 0)

	// no profile: forced to minimum until calibration completes
	assert.False(t, as.BudgetExceeded)
	assert.Equal(t, float32(0.25), as.Level(0))
	assert.Equal(t, time.Duration(0), as.Total)
}

func TestEmpty(t *testing.T) {
	al := &Allocator{}
	as := al.Allocate(nil, 10*time.Millisecond, 3)
	assert.Equal(t, 0, len(as.Levels))
	assert.False(t, as.BudgetExceeded)
	assert.Equal(t, 3, as.Frame)
}

func TestDeterminism(t *testing.T) {
	fa := feature.NewDiscrete("shadows", 0, 1, 2)
	fa.Index = 0
	fb := feature.NewDiscrete("msaa", 0, 1, 2)
	fb.Index = 1

	pa := tableProfile(t, fa, 0, 3*time.Millisecond, 6*time.Millisecond)
	pb := tableProfile(t, fb, 0, 3*time.Millisecond, 6*time.Millisecond)

	al := &Allocator{}
	items := []Item{
		{Feature: fa, Profile: pa, Target: 1, Weight: 0.5},
		{Feature: fb, Profile: pb, Target: 1, Weight: 0.5},
	}
	// 12ms > 9ms: one of the equal-weight features must yield; the
	// tie-break is registration order, so the first always drops first.
	first := al.Allocate(items, 9*time.Millisecond, 0)
	assert.Less(t, first.Level(0), first.Level(1))

	for i := 0; i < 10; i++ {
		again := al.Allocate(items, 9*time.Millisecond, 0)
		assert.Equal(t, first.Levels, again.Levels)
		assert.Equal(t, first.Total, again.Total)
	}
}

func TestPromote(t *testing.T) {
	fa := feature.NewContinuous("resolution", 0, 1)
	fa.Index = 0
	fb := feature.NewDiscrete("msaa", 0, 1, 2)
	fb.Index = 1

	pa := linearProfile(t, fa, 10*time.Millisecond)
	pb := tableProfile(t, fb, 0, 2*time.Millisecond, 3*time.Millisecond)

	items := []Item{
		{Feature: fa, Profile: pa, Target: 0.5, Weight: 0.8},
		{Feature: fb, Profile: pb, Target: 0.3, Weight: 0.2},
	}

	// FillBudget: leftover budget promotes B from level 1 to 2
	al := &Allocator{Policy: FillBudget}
	as := al.Allocate(items, 12*time.Millisecond, 0)
	assert.Equal(t, float32(2), as.Level(1))
	assert.LessOrEqual(t, as.Total, 12*time.Millisecond+budgetTol)

	// TrackCurve: the curve target is authoritative, no promotion
	al = &Allocator{Policy: TrackCurve}
	as = al.Allocate(items, 12*time.Millisecond, 0)
	assert.Equal(t, float32(1), as.Level(1))
}

// budget conformance: across a grid of targets and budgets, any
// non-infeasible allocation fits the budget.
func TestBudgetConformance(t *testing.T) {
	fa := feature.NewContinuous("resolution", 0, 1)
	fa.Index = 0
	fb := feature.NewDiscrete("msaa", 0, 1, 2)
	fb.Index = 1
	fc := feature.NewContinuous("lod", 1, 4)
	fc.Index = 2

	pa := linearProfile(t, fa, 10*time.Millisecond)
	pb := tableProfile(t, fb, time.Millisecond, 4*time.Millisecond, 9*time.Millisecond)
	pc := linearProfile(t, fc, 2*time.Millisecond)

	al := &Allocator{}
	for _, budget := range []time.Duration{4 * time.Millisecond, 8 * time.Millisecond, 16 * time.Millisecond, 32 * time.Millisecond} {
		for ta := float32(0); ta <= 1; ta += 0.25 {
			for tb := float32(0); tb <= 1; tb += 0.25 {
				items := []Item{
					{Feature: fa, Profile: pa, Target: ta, Weight: 0.9},
					{Feature: fb, Profile: pb, Target: tb, Weight: 0.1},
					{Feature: fc, Profile: pc, Target: ta, Weight: 0.5},
				}
				as := al.Allocate(items, budget, 0)
				if as.BudgetExceeded {
					continue
				}
				assert.LessOrEqual(t, as.Total, budget+budgetTol, "budget %v targets %g %g", budget, ta, tb)
				for i, it := range items {
					assert.GreaterOrEqual(t, as.Level(i), it.Feature.MinLevel())
					assert.LessOrEqual(t, as.Level(i), it.Feature.MaxLevel())
				}
			}
		}
	}
}
