package charsheet

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the set holding registered addresses.
const DefaultRedisKey = "charsheet:registered_emails"

// redisSet is the subset of redis.UniversalClient used by RedisDirectory.
type redisSet interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
	SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd
}

// RedisDirectory keeps registered addresses in a Redis set.
type RedisDirectory struct {
	client redisSet
	key    string
}

// NewRedisDirectory creates a directory over the set at key. An empty key
// uses DefaultRedisKey.
func NewRedisDirectory(client redisSet, key string) *RedisDirectory {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisDirectory{client: client, key: key}
}

func (d *RedisDirectory) Exists(ctx context.Context, email string) (bool, error) {
	ok, err := d.client.SIsMember(ctx, d.key, canonicalEmail(email)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	return ok, nil
}

func (d *RedisDirectory) Register(ctx context.Context, emails ...string) error {
	members := make([]any, 0, len(emails))
	for _, e := range emails {
		if e = canonicalEmail(e); e != "" {
			members = append(members, e)
		}
	}
	if len(members) == 0 {
		return nil
	}
	return d.client.SAdd(ctx, d.key, members...).Err()
}
