package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RedisStore is the redis-backed ResultStore used when redis is configured.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, token string, result StoredResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, resultKey(token), data, ttl).Err()
}

func (s *RedisStore) Take(ctx context.Context, token string) (StoredResult, bool, error) {
	val, err := s.client.GetDel(ctx, resultKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return StoredResult{}, false, nil
	}
	if err != nil {
		return StoredResult{}, false, err
	}

	var result StoredResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return StoredResult{}, false, err
	}
	return result, true, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// HealthCheck verifies the redis connection.
func (s *RedisStore) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func resultKey(token string) string {
	return fmt.Sprintf("results:%s", token)
}
