package application

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

const coordinatePlaces = 6

// ValidateWeights checks that weights can drive WeightedChoice.
func ValidateWeights(weights []float64) error {
	if len(weights) == 0 {
		return ErrNoWeights
	}
	var total float64
	for i, w := range weights {
		if w < 0 {
			return fmt.Errorf("%w: index %d = %v", ErrNegativeWeight, i, w)
		}
		total += w
	}
	if total <= 0 {
		return ErrZeroWeightSum
	}
	return nil
}

// WeightedChoice draws an index with probability proportional to its weight
// using a single cumulative-weight draw.
func WeightedChoice(rng *rand.Rand, weights []float64) (int, error) {
	if err := ValidateWeights(weights); err != nil {
		return 0, err
	}
	var total float64
	for _, w := range weights {
		total += w
	}
	target := rng.Float64() * total
	var cumulative float64
	last := 0
	for i, w := range weights {
		if w == 0 {
			continue
		}
		cumulative += w
		last = i
		if target < cumulative {
			return i, nil
		}
	}
	// float accumulation can leave target == total
	return last, nil
}

// UniformChoice draws an index in [0, n).
func UniformChoice(rng *rand.Rand, n int) int {
	return rng.IntN(n)
}

// Uniform draws a value in [low, high).
func Uniform(rng *rand.Rand, low, high float64) float64 {
	return low + rng.Float64()*(high-low)
}

// RoundCoordinate rounds a degree value to six decimal places.
func RoundCoordinate(v float64) float64 {
	return decimal.NewFromFloat(v).Round(coordinatePlaces).InexactFloat64()
}

// NewRand returns the generator's random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
