package cache

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/barberflow/api/internal/config"
)

func NewRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable at %s: %v", cfg.RedisAddr, err)
	}

	return client
}
