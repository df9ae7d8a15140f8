package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_inventory_app/internal/apperrors"
	portsrepo "github.com/SscSPs/pos_inventory_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const settingsKeyPrefix = "pos:settings:"

// RedisSettingsStore persists settings as plain string keys without expiry.
type RedisSettingsStore struct {
	client *redis.Client
}

// NewRedisSettingsStore creates a settings store on top of client.
func NewRedisSettingsStore(client *redis.Client) *RedisSettingsStore {
	return &RedisSettingsStore{client: client}
}

func (s *RedisSettingsStore) key(name string) string {
	return settingsKeyPrefix + name
}

// GetSetting reads one setting.
func (s *RedisSettingsStore) GetSetting(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: setting %s", apperrors.ErrNotFound, key)
	}
	if err != nil {
		return "", apperrors.NewStorageError("redis get", key, err)
	}
	return val, nil
}

// SetSetting overwrites one setting.
func (s *RedisSettingsStore) SetSetting(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return apperrors.NewStorageError("redis set", key, err)
	}
	return nil
}

var _ portsrepo.SettingsStoreFacade = (*RedisSettingsStore)(nil)
