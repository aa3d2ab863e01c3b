package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisSlotPrefix = "pos:slot:"

type redisSlotStore struct{ rdb *redis.Client }

// NewRedisSlotStore keeps each slot as a plain string key without expiry.
func NewRedisSlotStore(rdb *redis.Client) SlotStore { return &redisSlotStore{rdb: rdb} }

func (s *redisSlotStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.rdb.Get(ctx, redisSlotPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotEmpty
	}
	return v, err
}

func (s *redisSlotStore) Put(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, redisSlotPrefix+key, value, 0).Err()
}

func (s *redisSlotStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, redisSlotPrefix+key).Err()
}

func (s *redisSlotStore) Ping(ctx context.Context) error { return s.rdb.Ping(ctx).Err() }

func (s *redisSlotStore) Driver() string { return "redis" }
