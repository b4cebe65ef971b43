package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const DefaultTTL = 10 * time.Minute

// Provider is a JSON cache. Every implementation degrades to a miss when the backend is unavailable.
type Provider interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	Close() error
}

// NewRedis connects to the given url (redis://host:6379/0). An empty url or an unreachable
// server gives a cache that always misses.
func NewRedis(redisURL string, ttl time.Duration) Provider {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if redisURL == "" {
		log.Info("redis url is empty, cache is disabled")
		return NewNoop()
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.WithError(err).Warn("invalid redis url, cache is disabled")
		return NewNoop()
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err = client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("redis unavailable, bypassing cache")
		_ = client.Close()
		return NewNoop()
	}
	return &redisCache{client: client, ttl: ttl}
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

func (r *redisCache) warnUnavailableOnce(err error) {
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		log.WithError(err).Warn("redis unavailable, bypassing cache")
	}
}

func (r *redisCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err = json.Unmarshal(b, out); err != nil {
		return false, errors.Wrap(err, "cache: unmarshal error")
	}
	return true, nil
}

func (r *redisCache) SetJSON(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "cache: marshal error")
	}
	if err = r.client.Set(ctx, key, b, r.ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *redisCache) Close() error {
	return r.client.Close()
}

func NewNoop() Provider {
	return noop{}
}

type noop struct{}

func (noop) GetJSON(context.Context, string, any) (bool, error) {
	return false, nil
}

func (noop) SetJSON(context.Context, string, any) error {
	return nil
}

func (noop) Close() error {
	return nil
}

// BuildKey hashes the JSON form of parts under a readable prefix.
// The store revision belongs in parts so that every mutation moves readers to a fresh key.
func BuildKey(prefix string, parts ...any) string {
	raw, err := json.Marshal(parts)
	if err != nil {
		raw = []byte(fmt.Sprint(parts...))
	}
	hash := sha256.Sum256(raw)
	return fmt.Sprintf("ats:%s:%x", prefix, hash[:8])
}
