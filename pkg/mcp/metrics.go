package mcp

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	toolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volkern_mcp_tool_calls_total",
			Help: "Total number of tool invocations by tool name and outcome.",
		},
		[]string{"tool", "outcome"},
	)

	toolCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "volkern_mcp_tool_call_duration_seconds",
			Help:    "Duration of tool invocations in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"tool"},
	)
)

func observeToolCall(tool string, isError bool, elapsed time.Duration) {
	outcome := "success"
	if isError {
		outcome = "error"
	}
	toolCallsTotal.WithLabelValues(tool, outcome).Inc()
	toolCallDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}
