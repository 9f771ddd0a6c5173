package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapStablePointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyTicks)
	b := r.Ints.Get(KeyTicks)
	if a != b {
		t.Error("Expected repeated Get to return the same pointer")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
}

func TestSnapshotFlattens(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyDeaths).Store(2)
	r.Bools.Get(KeyAlive).Store(true)
	r.Strings.Get(KeyPhase).Store("dying")

	snap := r.Snapshot()
	if snap[KeyDeaths] != int64(2) {
		t.Errorf("Expected deaths 2, got %v", snap[KeyDeaths])
	}
	if snap[KeyAlive] != true {
		t.Errorf("Expected alive true, got %v", snap[KeyAlive])
	}
	if snap[KeyPhase] != "dying" {
		t.Errorf("Expected phase dying, got %v", snap[KeyPhase])
	}
	if len(snap) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(snap))
	}
}

func TestRangeSorted(t *testing.T) {
	r := NewRegistry()
	for _, k := range []string{"c", "a", "b"} {
		r.Ints.Get(k)
	}
	var keys []string
	r.Ints.Range(func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Expected sorted keys, got %v", keys)
	}
}

func TestRaiseMaxConcurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := int64(1); i <= 100; i++ {
		wg.Add(1)
		go func(v int64) {
			defer wg.Done()
			r.RaiseMax(KeyBestScore, v)
		}(i)
	}
	wg.Wait()

	if got := r.Ints.Get(KeyBestScore).Load(); got != 100 {
		t.Errorf("Expected max 100, got %d", got)
	}
	r.RaiseMax(KeyBestScore, 5)
	if got := r.Ints.Get(KeyBestScore).Load(); got != 100 {
		t.Errorf("Expected lower value ignored, got %d", got)
	}
}
