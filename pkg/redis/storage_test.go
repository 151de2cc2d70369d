package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userdash/pkg/redis"
)

// fakeClient implements the commands Storage uses; anything else panics
// through the nil embedded client.
type fakeClient struct {
	goredis.UniversalClient
	data map[string]string
	err  error
}

func newFakeClient() *fakeClient {
	return &fakeClient{data: map[string]string{}}
}

func (c *fakeClient) Get(_ context.Context, key string) *goredis.StringCmd {
	if c.err != nil {
		return goredis.NewStringResult("", c.err)
	}
	v, ok := c.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (c *fakeClient) Set(_ context.Context, key string, value any, _ time.Duration) *goredis.StatusCmd {
	if c.err != nil {
		return goredis.NewStatusResult("", c.err)
	}
	c.data[key] = string(value.([]byte))
	return goredis.NewStatusResult("OK", nil)
}

func (c *fakeClient) Del(_ context.Context, keys ...string) *goredis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := c.data[k]; ok {
			delete(c.data, k)
			n++
		}
	}
	return goredis.NewIntResult(n, nil)
}

func TestStorage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing key is nil without error", func(t *testing.T) {
		t.Parallel()
		s := redis.NewStorage(newFakeClient(), "userdash:")
		val, err := s.Get(ctx, "p1:userFormData")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("keys are prefixed", func(t *testing.T) {
		t.Parallel()
		client := newFakeClient()
		s := redis.NewStorage(client, "userdash:")

		require.NoError(t, s.Set(ctx, "p1:userFormStep", []byte("2")))
		assert.Equal(t, map[string]string{"userdash:p1:userFormStep": "2"}, client.data)

		val, err := s.Get(ctx, "p1:userFormStep")
		require.NoError(t, err)
		assert.Equal(t, []byte("2"), val)

		require.NoError(t, s.Delete(ctx, "p1:userFormData", "p1:userFormStep"))
		assert.Empty(t, client.data)
	})

	t.Run("client errors surface", func(t *testing.T) {
		t.Parallel()
		client := newFakeClient()
		client.err = errors.New("connection refused")
		s := redis.NewStorage(client, "")

		_, err := s.Get(ctx, "k")
		assert.ErrorIs(t, err, client.err)
		assert.ErrorIs(t, s.Set(ctx, "k", []byte("v")), client.err)
	})

	t.Run("delete without keys is a no-op", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, redis.NewStorage(newFakeClient(), "").Delete(ctx))
	})
}
