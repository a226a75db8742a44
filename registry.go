// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adapt

import (
	"sync/atomic"

	"cogentcore.org/adapt/alloc"
)

var emptyAssignment = &alloc.Assignment{}

// Registry holds the currently published quality level assignment.
// Publishing is a single atomic pointer store, so a reader never
// observes a partially updated assignment, and reads never block the
// allocator.
type Registry struct {
	cur atomic.Pointer[alloc.Assignment]
}

// Publish atomically replaces the current assignment. The assignment
// must not be mutated after publishing.
func (rg *Registry) Publish(as *alloc.Assignment) {
	rg.cur.Store(as)
}

// Current returns the currently published assignment. It never returns
// nil: before the first publish, an empty assignment is returned.
func (rg *Registry) Current() *alloc.Assignment {
	if as := rg.cur.Load(); as != nil {
		return as
	}
	return emptyAssignment
}
