// Package metrics defines the sink interface used to record planning
// activity. Implementations live in infra/metrics.
package metrics

import "time"

// CycleResult describes one completed planning cycle.
type CycleResult struct {
	SessionID string
	Trains    int
	Inducted  int
	Held      int
	Fallback  bool
	Duration  time.Duration
}

// SolveResult describes one optimizer run.
type SolveResult struct {
	Status    string
	Fallback  bool
	Objective float64 // zero when no optimum was proven
	Duration  time.Duration
}

// Sink records planning events. Implementations must be safe for use from a
// single planning goroutine; fan-out across sinks is handled by MultiSink.
type Sink interface {
	RecordPlanCycle(CycleResult) error
	RecordSolve(SolveResult) error
	RecordFleetSize(size int) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordPlanCycle(CycleResult) error { return nil }
func (NopSink) RecordSolve(SolveResult) error     { return nil }
func (NopSink) RecordFleetSize(int) error         { return nil }
