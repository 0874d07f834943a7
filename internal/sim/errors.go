package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEntity indicates an entity that cannot be simulated, such
	// as one with non-positive mass or a negative radius.
	ErrInvalidEntity = errors.New("sim: invalid entity")

	// ErrEmptyPopulation indicates a run with nothing to simulate.
	ErrEmptyPopulation = errors.New("sim: empty population")

	// ErrInvalidState indicates a NaN or Inf appeared during a run.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")

	// ErrInvalidConfig indicates unusable run parameters.
	ErrInvalidConfig = errors.New("sim: invalid config")
)

// SimError locates a failure within a run.
type SimError struct {
	Step    int
	Time    float64
	Index   int
	Message string
	Wrapped error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f) entity %d: %s", e.Step, e.Time, e.Index, e.Message)
}

func (e *SimError) Unwrap() error {
	return e.Wrapped
}
