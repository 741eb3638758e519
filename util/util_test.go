package util

import (
	"math/rand"
	"strings"
	"testing"
)

func TestIntBetweenInclusive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := IntBetween(rng, 1, 3)
		if v < 1 || v > 3 {
			t.Fatalf("Expected value in [1,3], got %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected all of 1..3 to be drawn, got %v", seen)
	}

	if v := IntBetween(rng, 5, 5); v != 5 {
		t.Errorf("Expected degenerate range to return 5, got %d", v)
	}
}

func TestUniformRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		v := Uniform(rng, -14, 14)
		if v < -14 || v >= 14 {
			t.Fatalf("Expected value in [-14,14), got %f", v)
		}
	}
}

func TestWeightedIndexDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	weights := []float64{60, 8, 8, 8, 8, 8, 8}
	counts := make([]int, len(weights))
	const n = 20000
	for i := 0; i < n; i++ {
		counts[WeightedIndex(rng, weights)]++
	}

	share := float64(counts[0]) / n
	if share < 0.52 || share > 0.60 {
		t.Errorf("Expected first weight share near 0.556, got %f", share)
	}
	for i := 1; i < len(counts); i++ {
		if counts[i] == 0 {
			t.Errorf("Expected index %d to be drawn at least once", i)
		}
	}
}

func TestEasing(t *testing.T) {
	f, err := Easing("linear")
	if err != nil {
		t.Fatalf("Expected linear easing, got error %v", err)
	}
	for _, v := range []float64{0, 0.25, 0.5, 1} {
		if f(v) != v {
			t.Errorf("Expected linear(%f) == %f, got %f", v, v, f(v))
		}
	}

	_, err = Easing("wobble")
	if err == nil {
		t.Fatal("Expected error for unknown easing")
	}
	if !strings.Contains(err.Error(), "in-out-cubic") || !strings.Contains(err.Error(), "linear") {
		t.Errorf("Expected the error to list the valid easings, got %q", err)
	}

	for _, name := range EasingNames() {
		f, err := Easing(name)
		if err != nil {
			t.Errorf("Expected %s to resolve, got %v", name, err)
			continue
		}
		if f(0) > 1e-9 || f(1) < 1-1e-9 {
			t.Errorf("Expected %s to map 0->0 and 1->1, got %f and %f", name, f(0), f(1))
		}
	}
}
