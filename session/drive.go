package session

import (
	"context"
	"time"

	"github.com/katalvlaran/gridpath/search"
)

// Drive steps run h once per interval until it reaches a terminal state,
// ctx is done, or Step fails. An interval <= 0 steps back to back, still
// checking ctx between steps. onStep, when non-nil, sees every result.
//
// Cancellation leaves the run Running; it can be resumed with Step or
// another Drive.
func (s *Session) Drive(ctx context.Context, h Handle, interval time.Duration, onStep func(search.StepResult)) (search.State, error) {
	st, err := s.State(h)
	if err != nil {
		return st, err
	}

	var tick <-chan time.Time
	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}

	for !st.Terminal() {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return st, ctx.Err()
			case <-tick:
			}
		}

		res, err := s.Step(h)
		if err != nil {
			return res.State, err
		}
		if onStep != nil {
			onStep(res)
		}
		st = res.State
	}

	return st, nil
}
