package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/YashRawat0947/SIH-2025/core/metrics"
)

func TestPromSinkRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordFleetSize(25))
	require.NoError(t, sink.RecordSolve(coremetrics.SolveResult{
		Status:   "optimal",
		Duration: 120 * time.Millisecond,
	}))
	require.NoError(t, sink.RecordPlanCycle(coremetrics.CycleResult{
		Trains:   25,
		Inducted: 18,
		Held:     7,
	}))

	families, err := reg.Gather()
	require.NoError(t, err)

	found := make(map[string]bool)
	for _, mf := range families {
		found[mf.GetName()] = true
		switch mf.GetName() {
		case "induction_fleet_size":
			assert.Equal(t, 25.0, mf.GetMetric()[0].GetGauge().GetValue())
		case "induction_trains_inducted":
			assert.Equal(t, 18.0, mf.GetMetric()[0].GetGauge().GetValue())
		case "induction_plan_cycles_total":
			assert.Equal(t, 1.0, mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
	for _, name := range []string{
		"induction_plan_cycles_total",
		"induction_solver_runs_total",
		"induction_solve_duration_seconds",
		"induction_fleet_size",
		"induction_trains_inducted",
	} {
		assert.True(t, found[name], "metric %s not exposed", name)
	}
}

func TestPromSinkDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	second, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	// Both sinks share the registered collectors.
	require.NoError(t, first.RecordPlanCycle(coremetrics.CycleResult{}))
	require.NoError(t, second.RecordPlanCycle(coremetrics.CycleResult{}))

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "induction_plan_cycles_total" {
			assert.Equal(t, 2.0, mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
}

func TestMultiSinkFansOut(t *testing.T) {
	reg := prometheus.NewRegistry()
	prom, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	multi := NewMultiSink(prom, coremetrics.NopSink{})
	require.NoError(t, multi.RecordFleetSize(10))

	families, err := reg.Gather()
	require.NoError(t, err)
	var got float64
	for _, mf := range families {
		if mf.GetName() == "induction_fleet_size" {
			got = mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	assert.Equal(t, 10.0, got)
}
