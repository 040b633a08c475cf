package spiel

import (
	"math"
	"testing"
)

func TestUniformDist(t *testing.T) {
	for n := 1; n <= 5; n++ {
		dist := UniformDist(n)
		if len(dist) != n {
			t.Fatalf("UniformDist(%d) has len %d", n, len(dist))
		}

		total := 0.0
		for _, p := range dist {
			if p != dist[0] {
				t.Errorf("UniformDist(%d) is not uniform: %v", n, dist)
			}
			total += p
		}

		if math.Abs(total-1.0) > 1e-12 {
			t.Errorf("UniformDist(%d) sums to %v", n, total)
		}
	}
}
