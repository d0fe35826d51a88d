package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys published by the engine and the session controller
const (
	KeyEngineTicks    = "engine.ticks"
	KeyEngineTickNs   = "engine.tick_ns"
	KeyEngineOverruns = "engine.overruns"
	KeyEnginePaused   = "engine.paused"

	KeySessionID           = "session.id"
	KeySessionLivesLost    = "session.lives_lost"
	KeySessionDecoysUsed   = "session.decoys_used"
	KeySessionDetections   = "session.detections"
	KeySessionMaxSuspicion = "session.max_suspicion"
)

// Registry is the central metrics facade
// Writers cache pointers at construction; hot paths touch atomics only
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Format renders every metric as sorted key=value pairs, for logs and the debug line
func (r *Registry) Format() string {
	parts := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", key, v.Get()))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", key, v.Load()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		parts = append(parts, fmt.Sprintf("%s=%s", key, v.Load()))
	})
	return strings.Join(parts, " ")
}
