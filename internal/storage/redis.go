package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nightgrid/neonmud/internal/game"
)

const redisKeyPrefix = "player:"

// RedisPlayerStore persists player records as JSON values in Redis.
// Used when several server processes need to share one save set.
type RedisPlayerStore struct {
	client *redis.Client
}

func NewRedisPlayerStore(addr string) *RedisPlayerStore {
	return &RedisPlayerStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// NewRedisPlayerStoreFromClient wraps an existing client, mainly for
// tests.
func NewRedisPlayerStoreFromClient(client *redis.Client) *RedisPlayerStore {
	return &RedisPlayerStore{client: client}
}

func (s *RedisPlayerStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *RedisPlayerStore) Save(ctx context.Context, p *game.Player) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshalling player: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+p.Key(), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisPlayerStore) Load(ctx context.Context, key string) (*game.Player, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	p := &game.Player{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("unmarshalling player: %w", err)
	}
	p.Normalize()
	return p, nil
}

func (s *RedisPlayerStore) Close() error {
	return s.client.Close()
}
