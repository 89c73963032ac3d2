// Package loop drives a simulation at a fixed tick rate.
package loop

import (
	"context"
	"time"
)

// TickFunc advances the simulation by dt seconds
type TickFunc func(dt float64) error

// Run calls fn every interval with dt = interval in seconds, until ctx is
// cancelled (returns nil) or fn returns an error (returned as is).
// Ticks the ticker drops under load are not replayed.
func Run(ctx context.Context, interval time.Duration, fn TickFunc) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	dt := interval.Seconds()
	for {
		select {
		case <-ticker.C:
			if err := fn(dt); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// RunN calls fn n times back to back without waiting on a clock.
// Used for headless runs where wall time does not matter.
func RunN(ctx context.Context, n int, dt float64, fn TickFunc) error {
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			return nil
		}
		if err := fn(dt); err != nil {
			return err
		}
	}
	return nil
}
