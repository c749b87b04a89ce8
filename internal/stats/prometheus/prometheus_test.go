package prometheus

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func gatherValue(t *testing.T, reg *prometheus.Registry, name string) (float64, bool) {
	t.Helper()
	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, m := range metrics {
		if m.GetName() != name || len(m.GetMetric()) == 0 {
			continue
		}
		sample := m.GetMetric()[0]
		switch {
		case sample.GetCounter() != nil:
			return sample.GetCounter().GetValue(), true
		case sample.GetGauge() != nil:
			return sample.GetGauge().GetValue(), true
		case sample.GetHistogram() != nil:
			return float64(sample.GetHistogram().GetSampleCount()), true
		}
	}
	return 0, false
}

func TestNew_DefaultRegistry(t *testing.T) {
	c := New(nil)
	if c == nil {
		t.Fatal("New(nil) returned nil")
	}
	if c.registry == nil {
		t.Error("registry should not be nil")
	}
}

func TestCollector_IncCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.IncCounter("test_counter", 5)
	c.IncCounter("test_counter", 3)

	val, ok := gatherValue(t, reg, "test_counter")
	if !ok {
		t.Fatal("counter test_counter not found in registry")
	}
	if val != 8 {
		t.Errorf("counter value = %v, want 8", val)
	}
}

func TestCollector_SetGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.SetGauge("test_gauge", 42)

	val, ok := gatherValue(t, reg, "test_gauge")
	if !ok {
		t.Fatal("gauge test_gauge not found in registry")
	}
	if val != 42 {
		t.Errorf("gauge value = %v, want 42", val)
	}
}

func TestCollector_ObserveHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.ObserveHistogram("test_histogram", 0.5)
	c.ObserveHistogram("test_histogram", 1.5)
	c.ObserveHistogram("test_histogram", 2.5)

	count, ok := gatherValue(t, reg, "test_histogram")
	if !ok {
		t.Fatal("histogram test_histogram not found in registry")
	}
	if count != 3 {
		t.Errorf("histogram count = %v, want 3", count)
	}
}

func TestCollector_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()

	existing := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "preexisting_counter",
		Help: "preexisting_counter",
	})
	reg.MustRegister(existing)
	existing.Add(100)

	c := New(reg)
	c.IncCounter("preexisting_counter", 5)

	val, ok := gatherValue(t, reg, "preexisting_counter")
	if !ok {
		t.Fatal("preexisting_counter not found in registry")
	}
	if val != 105 {
		t.Errorf("counter value = %v, want 105 (should reuse existing)", val)
	}
}

func TestCollector_ConcurrentAccess(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.IncCounter("concurrent_counter", 1)
				c.SetGauge("concurrent_gauge", int64(j))
				c.ObserveHistogram("concurrent_histogram", float64(j))
			}
		}()
	}
	wg.Wait()

	val, ok := gatherValue(t, reg, "concurrent_counter")
	if !ok {
		t.Fatal("concurrent_counter not found")
	}
	if val != 1000 {
		t.Errorf("counter value = %v, want 1000", val)
	}

	count, ok := gatherValue(t, reg, "concurrent_histogram")
	if !ok {
		t.Fatal("concurrent_histogram not found")
	}
	if count != 1000 {
		t.Errorf("histogram count = %v, want 1000", count)
	}
}
