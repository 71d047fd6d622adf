package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisClient *redis.Client

// NewRedis returns a shared client backed by an in-process miniredis. It
// stands in for the advisory-lock store; scenarios never touch it directly.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		mr, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	})

	return redisClient
}

// ClearRedis drops any reconciliation locks a scenario left behind.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
