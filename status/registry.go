package status

import "sync/atomic"

// Metric names written by the game loop
const (
	KeyTicks     = "engine.ticks"
	KeyDropped   = "input.dropped"
	KeyApples    = "game.items"
	KeyDeaths    = "game.deaths"
	KeyRounds    = "game.rounds"
	KeyBestScore = "game.best_score"
	KeyDelayMs   = "game.delay_ms"
	KeyAlive     = "game.alive"
	KeyPhase     = "game.phase"
)

// Registry groups run metrics by value type
// Safe to read from any goroutine while the loop writes
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Bools   *MetricMap[atomic.Bool]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Bools:   NewMetricMap[atomic.Bool](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Snapshot copies every metric into a flat map, suitable for structured log fields
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Ints.Count()+r.Bools.Count()+r.Strings.Count())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}

// RaiseMax stores v into the int metric if it exceeds the current value
func (r *Registry) RaiseMax(key string, v int64) {
	m := r.Ints.Get(key)
	for {
		cur := m.Load()
		if v <= cur || m.CompareAndSwap(cur, v) {
			return
		}
	}
}
