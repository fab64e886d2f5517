package status

import (
	"slices"
	"sync"
)

// MetricMap hands out one stable *T per metric name
// Only the name lookup locks; systems cache the pointer and update it atomically
type MetricMap[T any] struct {
	mu      sync.RWMutex
	metrics map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{metrics: make(map[string]*T)}
}

// Get returns the metric for name, registering a zero value on first use
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.RLock()
	ptr, ok := m.metrics[name]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.metrics[name]; ok {
		return ptr
	}
	ptr = new(T)
	m.metrics[name] = ptr
	return ptr
}

// Names returns the registered metric names, sorted
func (m *MetricMap[T]) Names() []string {
	m.mu.RLock()
	names := make([]string, 0, len(m.metrics))
	for name := range m.metrics {
		names = append(names, name)
	}
	m.mu.RUnlock()

	slices.Sort(names)
	return names
}
