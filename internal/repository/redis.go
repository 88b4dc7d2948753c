package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "coach-planner-backend/internal/errors"

	"github.com/redis/go-redis/v9"
)

// RedisStateRepository stores state documents as plain redis string values
type RedisStateRepository struct {
	client *redis.Client
}

// Ensure RedisStateRepository implements StateRepositoryInterface
var _ StateRepositoryInterface = (*RedisStateRepository)(nil)

// NewRedisStateRepository wraps an existing redis client
func NewRedisStateRepository(client *redis.Client) *RedisStateRepository {
	return &RedisStateRepository{client: client}
}

// NewRedisClient parses a redis:// URL into a client
func NewRedisClient(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opt), nil
}

// Read returns the document stored under key
func (r *RedisStateRepository) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrStateNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write replaces the document stored under key, without expiry
func (r *RedisStateRepository) Write(ctx context.Context, key string, data []byte) error {
	return r.client.Set(ctx, key, data, 0).Err()
}

// Ping checks the redis connection
func (r *RedisStateRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
