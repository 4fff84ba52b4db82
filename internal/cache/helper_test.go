package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })

	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	var missed cachedUser
	found, err := GetJSON(ctx, UserKey(1), &missed)
	assert.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, UserKey(1), cachedUser{ID: 1, Username: "jane"}, UserTTL))

	var hit cachedUser
	found, err = GetJSON(ctx, UserKey(1), &hit)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "jane", hit.Username)
}

func TestAside_FetchesOnMissAndCaches(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetchCalls := 0
	var got cachedUser
	err := Aside(ctx, UserKey(7), &got, time.Minute, func() error {
		fetchCalls++
		got = cachedUser{ID: 7, Username: "fetched"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetchCalls)
	assert.Equal(t, "fetched", got.Username)

	// Second read comes from the cache.
	var again cachedUser
	err = Aside(ctx, UserKey(7), &again, time.Minute, func() error {
		fetchCalls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetchCalls)
	assert.Equal(t, "fetched", again.Username)
}

func TestAside_DegradesWithoutRedis(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var got cachedUser
	err := Aside(ctx, UserKey(3), &got, time.Minute, func() error {
		got = cachedUser{ID: 3, Username: "direct"}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "direct", got.Username)
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(5), cachedUser{ID: 5}, UserTTL))
	assert.True(t, mr.Exists(UserKey(5)))

	InvalidateUser(ctx, 5)
	assert.False(t, mr.Exists(UserKey(5)))
}
