package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const salesOpenKey = "sales:open"

// RedisSalesGate keeps the global sales switch in Redis so that every
// instance of the service sees the same state. Sales are closed until an
// operator opens them.
type RedisSalesGate struct {
	client *redis.Client
}

func NewRedisSalesGate(client *redis.Client) *RedisSalesGate {
	return &RedisSalesGate{
		client: client,
	}
}

func (g *RedisSalesGate) IsOpen(ctx context.Context) (bool, error) {
	value, err := g.client.Get(ctx, salesOpenKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, err
	}

	open, err := strconv.ParseBool(value)
	if err != nil {
		return false, nil
	}

	return open, nil
}

func (g *RedisSalesGate) SetOpen(ctx context.Context, open bool) error {
	return g.client.Set(ctx, salesOpenKey, strconv.FormatBool(open), 0).Err()
}
