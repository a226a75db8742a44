// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perf

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Entry is the timing record of one completed frame.
type Entry struct {
	// Frame is the frame number.
	Frame int

	// Total is the full frame duration.
	Total time.Duration

	// Phases are the durations of each declared phase, in declaration
	// order. Unvisited phases are 0.
	Phases []time.Duration

	// Signal is the global quality signal in effect for this frame.
	Signal float32
}

// Idle returns the frame time not accounted for by any phase.
func (e *Entry) Idle() time.Duration {
	idle := e.Total
	for _, ph := range e.Phases {
		idle -= ph
	}
	if idle < 0 {
		idle = 0
	}
	return idle
}

// Log records per-frame phase timings for offline analysis of
// controller behavior, and exports them as CSV. Phases are declared
// once, in the order they occur within a frame (e.g., "sync", "draw",
// "post"). It is used from the frame-loop goroutine only.
type Log struct {
	// Names are the declared phase names, in within-frame order.
	Names []string

	// Entries are the recorded frames, oldest first.
	Entries []Entry

	// MaxEntries caps the log length; once reached, recording stops.
	// 0 means unbounded.
	MaxEntries int

	index   map[string]int
	start   time.Time
	last    time.Time
	phases  []time.Duration
	frame   int
	started bool
}

// NewLog returns a new [Log] with the given phase names.
func NewLog(phases ...string) *Log {
	lg := &Log{Names: phases, index: make(map[string]int, len(phases))}
	for i, nm := range phases {
		lg.index[nm] = i
	}
	lg.phases = make([]time.Duration, len(phases))
	return lg
}

// StartFrame marks the start of a new frame.
func (lg *Log) StartFrame() {
	lg.start = time.Now()
	lg.last = lg.start
	for i := range lg.phases {
		lg.phases[i] = 0
	}
	lg.started = true
}

// Phase marks the end of the named phase; its duration is the time
// since the previous phase end (or frame start). Unknown names and
// calls before StartFrame are ignored.
func (lg *Log) Phase(name string) {
	if !lg.started {
		return
	}
	i, ok := lg.index[name]
	if !ok {
		return
	}
	now := time.Now()
	lg.phases[i] += now.Sub(lg.last)
	lg.last = now
}

// EndFrame closes the current frame and records an [Entry] with the
// given global quality signal.
func (lg *Log) EndFrame(signal float32) {
	if !lg.started {
		return
	}
	lg.started = false
	lg.frame++
	if lg.MaxEntries > 0 && len(lg.Entries) >= lg.MaxEntries {
		return
	}
	lg.Entries = append(lg.Entries, Entry{
		Frame:  lg.frame - 1,
		Total:  time.Since(lg.start),
		Phases: append([]time.Duration{}, lg.phases...),
		Signal: signal,
	})
}

// SaveCSV writes the log to the given file as CSV, with one row per
// frame: frame number, FPS, each phase duration in seconds, idle time,
// and the quality signal.
func (lg *Log) SaveCSV(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	hdr := append([]string{"Frame", "FPS"}, lg.Names...)
	hdr = append(hdr, "Idle", "Signal")
	if err := w.Write(hdr); err != nil {
		return err
	}
	for i := range lg.Entries {
		e := &lg.Entries[i]
		fps := float64(0)
		if e.Total > 0 {
			fps = 1 / e.Total.Seconds()
		}
		row := make([]string, 0, len(hdr))
		row = append(row, strconv.Itoa(e.Frame), fmt.Sprintf("%g", fps))
		for _, ph := range e.Phases {
			row = append(row, fmt.Sprintf("%g", ph.Seconds()))
		}
		row = append(row, fmt.Sprintf("%g", e.Idle().Seconds()), fmt.Sprintf("%g", e.Signal))
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
