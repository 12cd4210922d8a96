package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the go-redis client surface the repositories depend on
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations
type Pipeliner interface {
	redis.Pipeliner
}
