package cache

import (
	"context"
	"fmt"
	"time"
)

// Only user profiles are cached. Posts are not: every single-post fetch
// mutates view_count, so a cached copy would be stale on arrival.
const UserKeyPrefix = "user:%d"

const UserTTL = 5 * time.Minute

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}
