package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("engine.ticks")
	b := r.Ints.Get("engine.ticks")
	if a != b {
		t.Error("Expected the same pointer for repeated Get")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("ball.speed").Max(float64(i))
		}()
	}
	wg.Wait()

	if m.Count() != 1 {
		t.Errorf("Expected one metric, got %d", m.Count())
	}
	if got := m.Get("ball.speed").Get(); got != 7 {
		t.Errorf("Expected max 7, got %v", got)
	}
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("Expected zero value 0, got %v", f.Get())
	}
	f.Set(5.5)
	if f.Max(3) != 5.5 {
		t.Error("Expected Max to keep the larger stored value")
	}
	if f.Max(9.25) != 9.25 || f.Get() != 9.25 {
		t.Errorf("Expected 9.25, got %v", f.Get())
	}
}

func TestRegistrySummarySorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("score.right").Store(2)
	r.Ints.Get("score.left").Store(1)
	r.Floats.Get("ball.speed").Set(6.05)

	want := "score.left=1 score.right=2 ball.speed=6.05"
	if got := r.Summary(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if r.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics, got %d", r.TotalCount())
	}
}
