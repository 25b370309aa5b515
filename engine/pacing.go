package engine

import (
	"context"
	"time"
)

// Pacing holds the pauses a session makes between steps of a turn so a
// renderer has time to show each one
type Pacing struct {
	ShuffleWait   time.Duration
	FlipDelay     time.Duration
	AutoPlayDelay time.Duration
	PlaceDelay    time.Duration
}

var (
	DefaultPacing = Pacing{
		ShuffleWait:   2000 * time.Millisecond,
		FlipDelay:     400 * time.Millisecond,
		AutoPlayDelay: 500 * time.Millisecond,
		PlaceDelay:    300 * time.Millisecond,
	}

	// NoPacing runs every turn straight through
	NoPacing = Pacing{}
)

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
