package cfr

import (
	"testing"
)

func TestActionValuePoolReuse(t *testing.T) {
	pool := &actionValuePool{}
	v := pool.get(4)
	if len(v) != 4 {
		t.Fatalf("get(4) returned slice of len %d", len(v))
	}

	for i := range v {
		v[i] = 1.0
	}
	pool.put(v)

	w := pool.get(4)
	if len(w) != 4 {
		t.Fatalf("get(4) returned slice of len %d", len(w))
	}

	for i, x := range w {
		if x != 0 {
			t.Errorf("recycled slice not zeroed at %d: %v", i, x)
		}
	}
}

func BenchmarkActionValuePool(b *testing.B) {
	pool := &actionValuePool{}
	for i := 0; i < b.N; i++ {
		v := pool.get(10)
		pool.put(v)
	}
}
