package movies

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/videoclub/internal/logging"
)

const titleKeyPrefix = "movie:title:"

// TitleCache stores title -> movie_id lookups. A miss is (0, false, nil).
type TitleCache interface {
	GetID(ctx context.Context, title string) (int64, bool, error)
	SetID(ctx context.Context, title string, id int64) error
}

// RedisTitleCache keeps title lookups in Redis with a fixed TTL.
type RedisTitleCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisTitleCache(rdb redis.Cmdable, ttl time.Duration) *RedisTitleCache {
	return &RedisTitleCache{rdb: rdb, ttl: ttl}
}

// NewRedisClient creates and pings a Redis client with optional password auth.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (c *RedisTitleCache) GetID(ctx context.Context, title string) (int64, bool, error) {
	id, err := c.rdb.Get(ctx, titleKeyPrefix+title).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (c *RedisTitleCache) SetID(ctx context.Context, title string, id int64) error {
	return c.rdb.Set(ctx, titleKeyPrefix+title, strconv.FormatInt(id, 10), c.ttl).Err()
}

// CachedRepository is a read-through cache in front of Repository for
// title resolution. The catalog is read-only, so entries only expire by TTL.
// Cache faults are logged and the lookup falls through to the database.
type CachedRepository struct {
	Repository
	cache TitleCache
	log   logging.Logger
}

func NewCachedRepository(repo Repository, cache TitleCache, log logging.Logger) *CachedRepository {
	return &CachedRepository{Repository: repo, cache: cache, log: log}
}

func (r *CachedRepository) FindIDByTitle(ctx context.Context, title string) (int64, error) {
	id, ok, err := r.cache.GetID(ctx, title)
	if err != nil {
		r.log.Warn(ctx, "title cache read failed", "title", title, "error", err)
	} else if ok {
		return id, nil
	}

	id, err = r.Repository.FindIDByTitle(ctx, title)
	if err != nil {
		return 0, err
	}

	if err := r.cache.SetID(ctx, title, id); err != nil {
		r.log.Warn(ctx, "title cache write failed", "title", title, "error", err)
	}

	return id, nil
}
