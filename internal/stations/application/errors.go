package application

import "errors"

var (
	// ErrNoWeights is returned when a categorical draw has no categories.
	ErrNoWeights = errors.New("sampling: no weights")
	// ErrNegativeWeight is returned when a weight is below zero.
	ErrNegativeWeight = errors.New("sampling: negative weight")
	// ErrZeroWeightSum is returned when all weights are zero.
	ErrZeroWeightSum = errors.New("sampling: weights sum to zero")

	// ErrInvalidConfig is returned when the config fails validation.
	ErrInvalidConfig = errors.New("config: invalid")
	// ErrInvalidSeed is returned when ZES_SEED is not an unsigned integer.
	ErrInvalidSeed = errors.New("config: invalid seed")

	// ErrNilCatalog is returned when the generator has no catalog.
	ErrNilCatalog = errors.New("generator: nil catalog")
	// ErrNilRand is returned when the generator has no random source.
	ErrNilRand = errors.New("generator: nil random source")
	// ErrNilGenerator is returned when the pipeline has no generator.
	ErrNilGenerator = errors.New("pipeline: nil generator")
	// ErrNilWriter is returned when the pipeline has no dataset writer.
	ErrNilWriter = errors.New("pipeline: nil dataset writer")
)
