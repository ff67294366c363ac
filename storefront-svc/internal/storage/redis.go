package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// RedisCartLock is a per-user mutex guarding cart creation and replacement.
type RedisCartLock struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartLock(client *redis.Client, ttl time.Duration) *RedisCartLock {
	return &RedisCartLock{Client: client, TTL: ttl}
}

func (l *RedisCartLock) LockKey(userID string) string {
	return "cart-lock:" + userID
}

func (l *RedisCartLock) Acquire(ctx context.Context, userID string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.Client.SetNX(ctx, l.LockKey(userID), token, l.TTL).Result()
	if err != nil {
		return "", false, wrap("cart_lock.acquire", err)
	}
	return token, ok, nil
}

// Release only deletes the lock while it still holds token.
func (l *RedisCartLock) Release(ctx context.Context, userID, token string) error {
	err := releaseScript.Run(ctx, l.Client, []string{l.LockKey(userID)}, token).Err()
	return wrap("cart_lock.release", err)
}

// RedisDenylist stores revoked session token ids until they would have expired anyway.
type RedisDenylist struct {
	Client *redis.Client
}

func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{Client: client}
}

func (d *RedisDenylist) RevokedKey(tokenID string) string {
	return "revoked:" + tokenID
}

func (d *RedisDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return d.Client.Set(ctx, d.RevokedKey(tokenID), "1", ttl).Err()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	res, err := d.Client.Exists(ctx, d.RevokedKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}
