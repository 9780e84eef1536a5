package movies

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/videoclub/internal/common"
	"github.com/dmitrijs2005/videoclub/internal/logging"
)

type fakeRepo struct {
	Repository
	ids   map[string]int64
	calls int
}

func (f *fakeRepo) FindIDByTitle(_ context.Context, title string) (int64, error) {
	f.calls++
	id, ok := f.ids[title]
	if !ok {
		return 0, common.ErrorNotFound
	}
	return id, nil
}

type fakeCache struct {
	data    map[string]int64
	getErr  error
	setErr  error
	setHits int
}

func (c *fakeCache) GetID(_ context.Context, title string) (int64, bool, error) {
	if c.getErr != nil {
		return 0, false, c.getErr
	}
	id, ok := c.data[title]
	return id, ok, nil
}

func (c *fakeCache) SetID(_ context.Context, title string, id int64) error {
	c.setHits++
	if c.setErr != nil {
		return c.setErr
	}
	c.data[title] = id
	return nil
}

func TestCachedRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	inner := &fakeRepo{ids: map[string]int64{"Heat": 949}}
	cache := &fakeCache{data: map[string]int64{}}
	repo := NewCachedRepository(inner, cache, logging.Nop{})

	for i := 0; i < 3; i++ {
		id, err := repo.FindIDByTitle(ctx, "Heat")
		require.NoError(t, err)
		assert.Equal(t, int64(949), id)
	}

	assert.Equal(t, 1, inner.calls, "only the first lookup reaches the database")
	assert.Equal(t, int64(949), cache.data["Heat"])
}

func TestCachedRepository_MissIsNotCached(t *testing.T) {
	ctx := context.Background()
	inner := &fakeRepo{ids: map[string]int64{}}
	cache := &fakeCache{data: map[string]int64{}}
	repo := NewCachedRepository(inner, cache, logging.Nop{})

	_, err := repo.FindIDByTitle(ctx, "Nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Zero(t, cache.setHits)
}

func TestCachedRepository_CacheFaultsFallThrough(t *testing.T) {
	ctx := context.Background()
	inner := &fakeRepo{ids: map[string]int64{"Heat": 949}}
	cache := &fakeCache{data: map[string]int64{}, getErr: errors.New("read"), setErr: errors.New("write")}
	repo := NewCachedRepository(inner, cache, logging.Nop{})

	id, err := repo.FindIDByTitle(ctx, "Heat")
	require.NoError(t, err)
	assert.Equal(t, int64(949), id)
	assert.Equal(t, 1, cache.setHits)
}

func TestRedisTitleCache_UnreachableServer(t *testing.T) {
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	cache := NewRedisTitleCache(rdb, time.Minute)

	_, _, err := cache.GetID(ctx, "Heat")
	require.Error(t, err)
	require.Error(t, cache.SetID(ctx, "Heat", 949))

	inner := &fakeRepo{ids: map[string]int64{"Heat": 949}}
	id, err := NewCachedRepository(inner, cache, logging.Nop{}).FindIDByTitle(ctx, "Heat")
	require.NoError(t, err)
	assert.Equal(t, int64(949), id)
}

func TestNewRedisClient_PingFails(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := NewRedisClient(ctx, "127.0.0.1:1", "")
	require.Error(t, err)
}
