package utils

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/divinedarshan/divine-darshan-backend/config"
)

var redisClient *redis.Client

var ErrRedisDisabled = errors.New("redis is not configured")

// InitRedis connects the shared client. Redis only backs password-reset
// tokens, so an empty REDIS_ADDR disables the feature instead of failing
// startup.
func InitRedis(cfg *config.Config) error {
	if cfg.RedisAddr == "" {
		return ErrRedisDisabled
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return err
	}

	redisClient = client
	return nil
}

func SetToken(key, value string, ttl time.Duration) error {
	if redisClient == nil {
		return ErrRedisDisabled
	}
	return redisClient.Set(context.Background(), key, value, ttl).Err()
}

func GetToken(key string) (string, error) {
	if redisClient == nil {
		return "", ErrRedisDisabled
	}
	return redisClient.Get(context.Background(), key).Result()
}

func DeleteToken(key string) error {
	if redisClient == nil {
		return ErrRedisDisabled
	}
	return redisClient.Del(context.Background(), key).Err()
}
