package util

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/fogleman/ease"
)

// Uniform returns a float uniformly distributed in [min, max).
func Uniform(rng *rand.Rand, min float64, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// IntBetween returns an int uniformly distributed in [min, max], both inclusive.
func IntBetween(rng *rand.Rand, min int, max int) int {
	if max <= min {
		return min
	}
	return rng.Intn(max-min+1) + min
}

// WeightedIndex picks an index into weights with probability proportional to its weight.
func WeightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}

	r := rng.Float64() * total
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}

	return len(weights) - 1
}

var easings = map[string]func(float64) float64{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
}

// Easing looks up a named easing curve.
func Easing(name string) (func(float64) float64, error) {
	f, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q, want one of %s", name, strings.Join(EasingNames(), ", "))
	}
	return f, nil
}

// EasingNames lists the accepted easing names.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
