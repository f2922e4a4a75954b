package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/YashRawat0947/SIH-2025/core/metrics"
)

// PromSink records planning events in Prometheus metrics.
type PromSink struct {
	cycles        *prometheus.CounterVec
	solves        *prometheus.CounterVec
	solveDuration prometheus.Histogram
	fleet         prometheus.Gauge
	inducted      prometheus.Gauge
}

// NewPromSink registers planning metrics on the default Prometheus
// registerer. The exposition server is started separately with
// StartPromServer.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	cycles := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "induction_plan_cycles_total",
		Help: "Total number of completed planning cycles",
	}, []string{"fallback"})
	solves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "induction_solver_runs_total",
		Help: "Total number of optimizer runs by terminal status",
	}, []string{"status"})
	solveDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "induction_solve_duration_seconds",
		Help:    "Wall-clock time of one optimizer run",
		Buckets: prometheus.DefBuckets,
	})
	fleet := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "induction_fleet_size",
		Help: "Number of trains in the last planned fleet",
	})
	inducted := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "induction_trains_inducted",
		Help: "Number of trains inducted by the last planning cycle",
	})

	if err := reg.Register(cycles); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			cycles = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(solves); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solves = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(solveDuration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solveDuration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(fleet); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			fleet = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(inducted); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			inducted = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{cycles: cycles, solves: solves, solveDuration: solveDuration, fleet: fleet, inducted: inducted}, nil
}

// RecordPlanCycle increments the cycle counter and updates the gauges.
func (s *PromSink) RecordPlanCycle(res coremetrics.CycleResult) error {
	s.cycles.WithLabelValues(strconv.FormatBool(res.Fallback)).Inc()
	s.inducted.Set(float64(res.Inducted))
	return nil
}

// RecordSolve observes the solve duration and counts the terminal status.
func (s *PromSink) RecordSolve(res coremetrics.SolveResult) error {
	s.solves.WithLabelValues(res.Status).Inc()
	s.solveDuration.Observe(res.Duration.Seconds())
	return nil
}

// RecordFleetSize sets the fleet gauge.
func (s *PromSink) RecordFleetSize(size int) error {
	s.fleet.Set(float64(size))
	return nil
}
