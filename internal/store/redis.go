package store

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Redis keeps the snapshot under one key; SET is atomic so a save is
// all-or-nothing.
type Redis struct {
	client *redis.Client
}

func OpenRedis(ctx context.Context, addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Load(ctx context.Context) ([]byte, error) {
	blob, err := r.client.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return blob, nil
}

func (r *Redis) Save(ctx context.Context, blob []byte) error {
	if err := r.client.Set(ctx, snapshotKey, blob, 0).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
