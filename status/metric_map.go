package status

import (
	"slices"
	"sync"
)

// MetricMap hands out one stable pointer per key.
// Creating a key takes the write lock; callers that cache the pointer never lock again.
type MetricMap[T any] struct {
	mu      sync.RWMutex
	metrics map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{metrics: make(map[string]*T)}
}

func (m *MetricMap[T]) lookup(key string) (*T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, found := m.metrics[key]
	return p, found
}

// Get returns the metric for key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if p, found := m.lookup(key); found {
		return p
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another goroutine may have won the race between the two locks
	if p, found := m.metrics[key]; found {
		return p
	}
	p := new(T)
	m.metrics[key] = p
	return p
}

// Keys returns the registered keys, sorted
func (m *MetricMap[T]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.metrics))
	for k := range m.metrics {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Range visits the metrics present at call time in key order
func (m *MetricMap[T]) Range(fn func(key string, metric *T)) {
	for _, k := range m.Keys() {
		p, _ := m.lookup(k)
		fn(k, p)
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	n := len(m.metrics)
	m.mu.RUnlock()
	return n
}
