package credstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds the Redis connection configuration.
type RedisConfig struct {
	// ConnectionURL in the format "redis://:password@localhost:6379/0"
	ConnectionURL  string        `env:"STOREFRONT_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"STOREFRONT_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"STOREFRONT_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"STOREFRONT_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// Connect establishes a Redis connection, retrying up to cfg.RetryAttempts
// times with cfg.RetryInterval between attempts.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for range attempts {
		client := redis.NewClient(opt)
		lastErr = client.Ping(ctx).Err()
		if lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrRedisNotReady, lastErr)
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKey overrides the hash key the credentials are stored under.
func WithKey(key string) RedisStoreOption {
	return func(s *RedisStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithTTL sets an expiry on the stored credentials (0 keeps them forever).
func WithTTL(ttl time.Duration) RedisStoreOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

// RedisStore implements Store with a single Redis hash holding the token
// and user fields, so both halves of the snapshot live and die together.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed credential store.
func NewRedisStore(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		key:    "shopkit:credentials",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load retrieves the stored credentials.
func (s *RedisStore) Load(ctx context.Context) (Credentials, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	creds := Credentials{
		Token: fields["token"],
		User:  []byte(fields["user"]),
	}
	if creds.IsZero() {
		return Credentials{}, ErrNoCredentials
	}
	return creds, nil
}

// Save replaces the stored credentials in a single HSet.
func (s *RedisStore) Save(ctx context.Context, creds Credentials) error {
	if creds.IsZero() {
		return ErrIncompleteCredentials
	}

	if err := s.client.HSet(ctx, s.key, "token", creds.Token, "user", string(creds.User)).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	if s.ttl > 0 {
		if err := s.client.Expire(ctx, s.key, s.ttl).Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrStoreFailure, err)
		}
	}
	return nil
}

// Clear removes the stored credentials.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	return nil
}
