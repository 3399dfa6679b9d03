package config

import (
	"gopkg.in/redis.v5"
)

func SetupRedis(redisUrl string) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr: redisUrl,
	})

	if err := redisClient.Ping().Err(); err != nil {
		return nil, err
	}

	return redisClient, nil
}
