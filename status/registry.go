package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry groups the simulation telemetry by value type
// Systems fetch metric pointers once at construction and write atomics in Update
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Summary renders every metric as name=value, bools then ints then floats, each sorted by name
func (r *Registry) Summary() string {
	var parts []string
	for _, name := range r.Bools.Names() {
		parts = append(parts, fmt.Sprintf("%s=%t", name, r.Bools.Get(name).Load()))
	}
	for _, name := range r.Ints.Names() {
		parts = append(parts, fmt.Sprintf("%s=%d", name, r.Ints.Get(name).Load()))
	}
	for _, name := range r.Floats.Names() {
		parts = append(parts, fmt.Sprintf("%s=%g", name, r.Floats.Get(name).Get()))
	}
	return strings.Join(parts, " ")
}
