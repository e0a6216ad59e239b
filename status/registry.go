package status

import "sync/atomic"

// Registry holds round telemetry
// The engine caches pointers at construction; the tick loop writes directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// Snapshot flattens all metrics into key/value text, sorted by key within each type
func (r *Registry) Snapshot() []KV {
	out := make([]KV, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, KV{Key: key, Value: formatInt(v.Load())})
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		out = append(out, KV{Key: key, Value: v.Load()})
	})
	return out
}

// KV is one rendered metric
type KV struct {
	Key   string
	Value string
}
