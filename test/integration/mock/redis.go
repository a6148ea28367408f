package mock

import (
	"context"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisMock *Redis

// Redis is an in-process Redis server and a client connected to it.
type Redis struct {
	Client *redis.Client
	server *miniredis.Miniredis
}

func NewRedis() *Redis {
	if redisMock == nil {
		redisOnce.Do(
			func() {
				redisMock = openRedis()
			},
		)
	}

	return redisMock
}

func openRedis() *Redis {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return &Redis{
		Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		server: server,
	}
}

// Clear removes every key.
func (r *Redis) Clear() error {
	return r.Client.FlushAll(context.TODO()).Err()
}

// FastForward advances key expiry by d.
func (r *Redis) FastForward(d time.Duration) {
	r.server.FastForward(d)
}
