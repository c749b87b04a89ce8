package ephcache

import "testing"

func TestLRU_InvalidCapacity(t *testing.T) {
	if _, err := NewLRU[string](0); err == nil {
		t.Error("NewLRU(0) should return error")
	}
	if _, err := NewLRU[string](-1); err == nil {
		t.Error("NewLRU(-1) should return error")
	}
}

func TestLRU_RecencyOnGet(t *testing.T) {
	l, err := NewLRU[string](2)
	if err != nil {
		t.Fatalf("NewLRU() error = %v", err)
	}

	l.Add("a", "one")
	l.Add("b", "two")
	l.Get("a")          // a is now most recently used
	l.Add("c", "three") // evicts b

	if _, ok := l.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := l.Get("a"); !ok {
		t.Error("a should still be present")
	}
}

func TestLRU_Purge(t *testing.T) {
	l, err := NewLRU[string](4)
	if err != nil {
		t.Fatalf("NewLRU() error = %v", err)
	}

	l.Add("a", "one")
	l.Add("b", "two")
	l.Purge()

	if l.Len() != 0 {
		t.Errorf("Len() after Purge = %d, want 0", l.Len())
	}
}
