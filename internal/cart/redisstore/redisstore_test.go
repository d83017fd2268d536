package redisstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/cart/redisstore"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// fakeRedis — в памяти; остальные методы Cmdable не вызываются.
type fakeRedis struct {
	redis.Cmdable
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newFake() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func TestStore_MissingKey(t *testing.T) {
	s := redisstore.New(newFake(), "cust-1", 0)

	data, ok, err := s.Get(context.Background(), "fishShopCart")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, data)
}

func TestStore_PrefixAndTTL(t *testing.T) {
	f := newFake()
	s := redisstore.New(f, "cust-1", time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "fishShopCart", []byte(`[]`)))
	require.Equal(t, `[]`, f.data["cust-1:fishShopCart"])
	require.Equal(t, time.Hour, f.ttls["cust-1:fishShopCart"])

	data, ok, err := s.Get(ctx, "fishShopCart")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[]`, string(data))
}

func TestStore_NoPrefix(t *testing.T) {
	f := newFake()
	s := redisstore.New(f, "", 0)

	require.NoError(t, s.Set(context.Background(), "k", []byte("v")))
	require.Contains(t, f.data, "k")
}

func TestStore_GetError(t *testing.T) {
	f := newFake()
	f.getErr = errors.New("conn refused")
	s := redisstore.New(f, "", 0)

	_, ok, err := s.Get(context.Background(), "k")
	require.Error(t, err)
	require.False(t, ok)
}

func TestConnect_BadURL(t *testing.T) {
	_, err := redisstore.Connect(context.Background(), redisstore.Config{URL: "http://nope"})
	require.Error(t, err)
}
