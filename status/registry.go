// Package status keeps lock-free runtime counters for the debug line and the exit log.
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys
const (
	Frames     = "frames"
	Collisions = "collisions"
	Bans       = "bans"
	Fonts      = "fonts"
	TickMicros = "tick_us"
)

// Registry groups integer counters and float gauges.
// The loop caches pointers once; hot paths touch only atomics.
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Summary renders every metric as sorted key=value pairs, counters first
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", key, v.Get()))
	})
	return strings.Join(parts, " ")
}
