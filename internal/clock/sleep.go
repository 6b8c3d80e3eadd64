// Package clock holds context-aware waiting helpers.
package clock

import (
	"context"
	"time"
)

// Sleep blocks for d. It returns ctx.Err() once ctx is done and nil when
// the timer fires or wake receives. A nil wake never fires.
func Sleep(ctx context.Context, d time.Duration, wake <-chan struct{}) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wake:
		return nil
	case <-timer.C:
		return nil
	}
}
