package pkg

import (
	"context"
	"fmt"
	"time"
)

// DefaultTimeout bounds how long Listen and Connect wait for the other side.
const DefaultTimeout = 600 * time.Second

// Deadline counts down the time left to establish a connection.
type Deadline struct {
	Duration time.Duration
	Started  time.Time
}

func NewDeadline(d time.Duration) *Deadline {
	return &Deadline{Duration: d, Started: time.Now()}
}

func (dl *Deadline) Remaining() time.Duration {
	left := dl.Duration - time.Since(dl.Started)
	if left < 0 {
		return 0
	}
	return left
}

func (dl *Deadline) String() string {
	r := dl.Remaining()
	return fmt.Sprintf("%d:%02d", int(r.Minutes()), int(r.Seconds())%60)
}

// race runs op against the deadline. When the timer or ctx wins, abort is
// called to unblock op and a late successful result is passed to drop.
func race[T any](ctx context.Context, dl *Deadline, op func() (T, error), abort func(), drop func(T)) (T, error) {
	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := op()
		done <- result{v, err}
	}()

	timer := time.NewTimer(dl.Remaining())
	defer timer.Stop()

	var zero T
	var err error
	select {
	case r := <-done:
		return r.v, r.err
	case <-timer.C:
		err = fmt.Errorf("%w after %s", ErrTimeout, dl.Duration)
	case <-ctx.Done():
		err = ctx.Err()
	}
	abort()
	go func() {
		if r := <-done; r.err == nil && drop != nil {
			drop(r.v)
		}
	}()
	return zero, err
}
