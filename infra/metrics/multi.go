package metrics

import coremetrics "github.com/YashRawat0947/SIH-2025/core/metrics"

// MultiSink fans planning events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPlanCycle forwards the event to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordPlanCycle(res coremetrics.CycleResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordPlanCycle(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordSolve forwards the event to all sinks.
func (m *MultiSink) RecordSolve(res coremetrics.SolveResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordSolve(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordFleetSize forwards the event to all sinks.
func (m *MultiSink) RecordFleetSize(size int) error {
	for _, s := range m.Sinks {
		if err := s.RecordFleetSize(size); err != nil {
			return err
		}
	}
	return nil
}
