// Package status collects diagnostics counters written by the simulation
// and the frame loop, and read by the diagnostics overlay.
package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry groups metrics by value type
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines formats every metric as "key: value"; strings first, then ints, then floats
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Strings.Range(func(key string, s *AtomicString) {
		lines = append(lines, key+": "+s.Load())
	})
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, key+": "+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(key string, f *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s: %.1f", key, f.Get()))
	})
	return lines
}
