package cadence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const dayKey = "cadence:day"

// RedisProvider reads the day counter from Redis, where the engagement
// scheduler publishes it. A missing key falls back to the embedded
// fallback provider so a cold cache never stalls resolutions.
type RedisProvider struct {
	Client   *redis.Client
	Fallback Provider
}

func NewRedisProvider(client *redis.Client, fallback Provider) *RedisProvider {
	return &RedisProvider{Client: client, Fallback: fallback}
}

func (p *RedisProvider) Day(ctx context.Context) (int, error) {
	if p == nil || p.Client == nil {
		return 0, errors.New("cadence: redis client not configured")
	}
	day, err := p.Client.Get(ctx, dayKey).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) && p.Fallback != nil {
			return p.Fallback.Day(ctx)
		}
		return 0, fmt.Errorf("cadence: read day counter: %w", err)
	}
	if day < 1 {
		return 0, fmt.Errorf("cadence: invalid day counter %d", day)
	}
	return day, nil
}

// Publish writes the day counter. Exposed for the scheduler and for
// operational overrides via the migrate/admin tooling.
func (p *RedisProvider) Publish(ctx context.Context, day int) error {
	if p == nil || p.Client == nil {
		return errors.New("cadence: redis client not configured")
	}
	if day < 1 {
		return fmt.Errorf("cadence: invalid day counter %d", day)
	}
	return p.Client.Set(ctx, dayKey, day, 0).Err()
}
