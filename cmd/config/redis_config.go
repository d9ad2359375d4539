package config

import (
	"fmt"

	"fridgesmart/internal/utils"

	"github.com/redis/go-redis/v9"
)

func ConnectRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", utils.GetConfig("REDIS_HOST"), utils.GetConfig("REDIS_PORT")),
	})
}
