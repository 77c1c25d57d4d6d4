package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	PoolSize int
}

type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

var (
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	decoder, _ = zstd.NewReader(nil)
)

func NewRedisClient(cfg RedisConfig, ttl time.Duration) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: 5,

		// Timeouts
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		// Retry configuration
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ttl:    ttl,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func (r *RedisClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return r.client.Ping(ctx).Err()
}

// PassageKey namespaces a rendered passage by translation and corpus digest,
// so re-importing a translation never serves stale text.
func PassageKey(translation string, digest uint64, kind, ref string, superscripts bool) string {
	ref = strings.Join(strings.Fields(strings.ToLower(ref)), "_")
	return fmt.Sprintf("passage:%s:%016x:%s:%s:%t", translation, digest, kind, ref, superscripts)
}

func (r *RedisClient) SetPassage(ctx context.Context, key, text string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := r.client.Set(ctx, key, compress(text), r.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set passage in Redis: %w", err)
	}

	return nil
}

// GetPassage reports ok=false on a miss.
func (r *RedisClient) GetPassage(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}

	text, err := decompress(data)
	if err != nil {
		return "", false, err
	}

	return text, true, nil
}

func (r *RedisClient) DeletePassage(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete passage from Redis: %w", err)
	}

	return nil
}

func compress(text string) []byte {
	return encoder.EncodeAll([]byte(text), nil)
}

func decompress(data []byte) (string, error) {
	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return "", fmt.Errorf("corrupt cached passage: %w", err)
	}
	return string(out), nil
}
