package metrics

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/YashRawat0947/SIH-2025/core/metrics"
)

func TestInfluxSinkWritesPoints(t *testing.T) {
	var mu sync.Mutex
	var lines []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/health"):
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"name":"influxdb","status":"pass","version":"2.7"}`)
		case strings.HasPrefix(r.URL.Path, "/api/v2/write"):
			body, _ := io.ReadAll(r.Body)
			mu.Lock()
			lines = append(lines, string(body))
			mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(srv.URL, "token", "org", "bucket")
	influx, ok := sink.(*InfluxSink)
	require.True(t, ok, "healthy endpoint must yield a real sink")
	defer influx.Close()

	require.NoError(t, sink.RecordFleetSize(25))
	require.NoError(t, sink.RecordSolve(coremetrics.SolveResult{
		Status:   "optimal",
		Duration: time.Second,
	}))
	require.NoError(t, sink.RecordPlanCycle(coremetrics.CycleResult{
		SessionID: "abc",
		Trains:    25,
		Inducted:  18,
	}))

	mu.Lock()
	defer mu.Unlock()
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "fleet_size")
	assert.Contains(t, joined, "solver_run")
	assert.Contains(t, joined, "status=optimal")
	assert.Contains(t, joined, "plan_cycle")
	assert.Contains(t, joined, "session_id=abc")
}

func TestInfluxSinkFallsBackWhenUnhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(srv.URL, "token", "org", "bucket")
	_, ok := sink.(coremetrics.NopSink)
	assert.True(t, ok, "unhealthy endpoint must yield the nop sink")
}
