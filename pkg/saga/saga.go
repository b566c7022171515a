// Package saga runs an ordered list of steps and, when one fails, undoes the
// steps that already completed in reverse order.
package saga

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrStepFailed         = errors.New("saga step failed")
	ErrCompensationFailed = errors.New("saga compensation failed")
)

type Step struct {
	Name string
	Do   func(ctx context.Context) error
	// Undo may be nil when the step has nothing to revert.
	Undo func(ctx context.Context) error
}

type Saga struct {
	steps []Step
}

func New(steps ...Step) *Saga {
	return &Saga{steps: steps}
}

func (s *Saga) Add(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

func (s *Saga) Len() int {
	return len(s.steps)
}

// Forward runs the steps without compensation. Use it inside a database
// transaction, where rollback reverts every step at once.
func (s *Saga) Forward(ctx context.Context) error {
	for _, step := range s.steps {
		if err := step.Do(ctx); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrStepFailed, step.Name, err)
		}
	}
	return nil
}

// Run executes the steps; on failure every completed step is undone, newest
// first. Undo errors do not stop the remaining compensations and are joined
// into the returned error.
func (s *Saga) Run(ctx context.Context) error {
	for i, step := range s.steps {
		err := step.Do(ctx)
		if err == nil {
			continue
		}

		stepErr := fmt.Errorf("%w: %s: %w", ErrStepFailed, step.Name, err)
		if undoErr := s.compensate(context.WithoutCancel(ctx), i); undoErr != nil {
			return errors.Join(stepErr, undoErr)
		}
		return stepErr
	}
	return nil
}

func (s *Saga) compensate(ctx context.Context, failedAt int) error {
	var errs []error
	for i := failedAt - 1; i >= 0; i-- {
		step := s.steps[i]
		if step.Undo == nil {
			continue
		}
		if err := step.Undo(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrCompensationFailed, step.Name, err))
		}
	}
	return errors.Join(errs...)
}
