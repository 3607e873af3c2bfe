package dice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/skirmish/internal"
)

type timeoutRoller struct {
	next    Roller
	timeout time.Duration
}

// NewTimeoutRoller bounds every draw of next by timeout. Failures from next,
// including the timeout itself, come back as transient dice errors.
// A non-positive timeout disables the bound but still classifies errors.
func NewTimeoutRoller(next Roller, timeout time.Duration) Roller {
	if next == nil {
		panic("roller is required")
	}
	return &timeoutRoller{
		next:    next,
		timeout: timeout,
	}
}

type batchResult struct {
	rolls map[string]int
	err   error
}

// RollBatch implements Roller.RollBatch
func (t *timeoutRoller) RollBatch(ctx context.Context, sides int, names []string) (map[string]int, error) {
	if t.timeout <= 0 {
		rolls, err := t.next.RollBatch(ctx, sides, names)
		if err != nil {
			return nil, asTransient(err, names)
		}
		return rolls, nil
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	// buffered so a slow roller never blocks after we give up on it
	done := make(chan batchResult, 1)
	go func() {
		rolls, err := t.next.RollBatch(ctx, sides, names)
		done <- batchResult{rolls: rolls, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, asTransient(res.err, names)
		}
		return res.rolls, nil
	case <-ctx.Done():
		return nil, internal.NewTransientDiceError(fmt.Sprintf("rolling %v after %s", names, t.timeout), ctx.Err())
	}
}

func asTransient(err error, names []string) error {
	if errors.Is(err, internal.ErrTransientDice) || errors.Is(err, internal.ErrInvalidParam) {
		return err
	}
	return internal.NewTransientDiceError(fmt.Sprintf("rolling %v", names), err)
}
