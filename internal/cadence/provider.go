// Package cadence supplies the global engagement-program day counter.
// The counter is program-wide, not per-user: day 1 is the first day of
// the current engagement program.
package cadence

import (
	"context"
	"time"
)

// Provider returns the current cadence day, a small positive integer.
type Provider interface {
	Day(ctx context.Context) (int, error)
}

// Fixed always reports the same day. Used in tests and as an
// operational override.
type Fixed int

func (f Fixed) Day(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if int(f) < 1 {
		return 1, nil
	}
	return int(f), nil
}

// Clock derives the day from a program start date in UTC. The start
// date itself is day 1; dates before the start clamp to 1.
type Clock struct {
	Start time.Time
	Now   func() time.Time
}

func (c Clock) Day(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	start := c.Start.UTC().Truncate(24 * time.Hour)
	elapsed := now().UTC().Truncate(24 * time.Hour).Sub(start)
	day := int(elapsed/(24*time.Hour)) + 1
	if day < 1 {
		day = 1
	}
	return day, nil
}
