package cache

import "gopkg.in/redis.v5"

// RedisRequestCacher stores each key as a capped redis list under Prefix.
type RedisRequestCacher struct {
	Prefix    string
	MaxNumber int
	client    *redis.Client
}

func CreateRedisCache(client *redis.Client, prefix string, maxNumber int) *RedisRequestCacher {
	return &RedisRequestCacher{Prefix: prefix, MaxNumber: maxNumber, client: client}
}

func (cacher *RedisRequestCacher) Write(key string, value []byte) error {
	pushCmd := cacher.client.LPush(cacher.Prefix+key, value)

	if pushCmd.Err() != nil {
		return pushCmd.Err()
	}

	trimCmd := cacher.client.LTrim(cacher.Prefix+key, 0, int64(cacher.MaxNumber-1))

	if trimCmd.Err() != nil {
		return trimCmd.Err()
	}

	return nil
}

func (cacher *RedisRequestCacher) Read(key string) ([]string, error) {
	return cacher.client.LRange(cacher.Prefix+key, 0, int64(cacher.MaxNumber-1)).Result()
}
