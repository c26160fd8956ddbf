package application

import (
	"errors"
	"math"
	"testing"
)

func TestWeightedChoiceRejectsBadWeights(t *testing.T) {
	rng := NewRand(1)
	cases := []struct {
		name    string
		weights []float64
		want    error
	}{
		{name: "empty", weights: nil, want: ErrNoWeights},
		{name: "negative", weights: []float64{0.5, -0.1}, want: ErrNegativeWeight},
		{name: "zero sum", weights: []float64{0, 0, 0}, want: ErrZeroWeightSum},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := WeightedChoice(rng, tc.weights); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestWeightedChoiceSkipsZeroWeights(t *testing.T) {
	rng := NewRand(3)
	for i := 0; i < 1000; i++ {
		idx, err := WeightedChoice(rng, []float64{0, 1, 0})
		if err != nil {
			t.Fatalf("weighted choice: %v", err)
		}
		if idx != 1 {
			t.Fatalf("expected index 1, got %d", idx)
		}
	}
}

func TestWeightedChoiceFollowsWeights(t *testing.T) {
	rng := NewRand(2025)
	weights := []float64{0.3, 0.5, 0.2}
	counts := make([]int, len(weights))
	const draws = 100000
	for i := 0; i < draws; i++ {
		idx, err := WeightedChoice(rng, weights)
		if err != nil {
			t.Fatalf("weighted choice: %v", err)
		}
		counts[idx]++
	}
	for i, w := range weights {
		got := float64(counts[i]) / draws
		if math.Abs(got-w) > 0.01 {
			t.Fatalf("index %d: expected frequency near %v, got %v", i, w, got)
		}
	}
}

func TestUniformStaysInRange(t *testing.T) {
	rng := NewRand(8)
	for i := 0; i < 10000; i++ {
		v := Uniform(rng, -0.005, 0.005)
		if v < -0.005 || v >= 0.005 {
			t.Fatalf("value %v out of range", v)
		}
		if n := UniformChoice(rng, 3); n < 0 || n > 2 {
			t.Fatalf("choice %d out of range", n)
		}
	}
}

func TestRoundCoordinate(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{in: 41.03921234, want: 41.039212},
		{in: 28.8576005, want: 28.857601},
		{in: -12.0000004, want: -12},
		{in: 10, want: 10},
	}
	for _, tc := range cases {
		if got := RoundCoordinate(tc.in); got != tc.want {
			t.Fatalf("round %v: expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestNewRandIsReproducible(t *testing.T) {
	a := NewRand(77)
	b := NewRand(77)
	for i := 0; i < 10; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("expected identical streams for the same seed")
		}
	}
}
