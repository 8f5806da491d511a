package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	apperrors "github.com/kateryna-senchenko/textencryptor/pkg/errors"
)

// RedisConfig configures a RedisCache.
type RedisConfig struct {
	Addr     string // host:port
	Password string
	DB       int
}

// redisLogger forwards go-redis internal messages (pool dial failures and
// the like) to a charm logger instead of stderr.
type redisLogger struct {
	logger *log.Logger
}

func (l redisLogger) Printf(_ context.Context, format string, v ...any) {
	l.logger.Debugf(strings.TrimPrefix(format, "redis: "), v...)
}

// SetRedisLogger routes go-redis's package-level logging through logger at
// debug level. It affects every Redis client in the process.
func SetRedisLogger(logger *log.Logger) {
	redis.SetLogger(redisLogger{logger: logger.WithPrefix("redis")})
}

// RedisCache stores entries in Redis. It is safe for concurrent use and
// suited to multiple API instances sharing results.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection with PING,
// retrying transient failures. It fails with CACHE_UNAVAILABLE when the
// server cannot be reached.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		// Connection attempts are retried by the PING loop below.
		DialerRetries: 1,
	})

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(client.Ping(ctx).Err())
	})
	if err != nil {
		client.Close()
		return nil, apperrors.Wrap(apperrors.ErrCodeCacheUnavailable, err, "connect to redis at %s", cfg.Addr)
	}

	return &RedisCache{client: client}, nil
}

// Get retrieves a value from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value in Redis. A ttl <= 0 stores the key without expiry.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes a value from Redis.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
