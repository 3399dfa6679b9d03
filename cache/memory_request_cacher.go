package cache

import "sync"

// MemoryRequestCacher mirrors the LPUSH/LTRIM behaviour of RedisRequestCacher in process.
type MemoryRequestCacher struct {
	MaxNumber int

	mu      sync.Mutex
	entries map[string][]string
}

func CreateMemoryCache(maxNumber int) *MemoryRequestCacher {
	return &MemoryRequestCacher{MaxNumber: maxNumber, entries: make(map[string][]string)}
}

func (cacher *MemoryRequestCacher) Write(key string, value []byte) error {
	cacher.mu.Lock()
	defer cacher.mu.Unlock()

	values := append([]string{string(value)}, cacher.entries[key]...)
	if len(values) > cacher.MaxNumber {
		values = values[:cacher.MaxNumber]
	}
	cacher.entries[key] = values

	return nil
}

func (cacher *MemoryRequestCacher) Read(key string) ([]string, error) {
	cacher.mu.Lock()
	defer cacher.mu.Unlock()

	return append([]string{}, cacher.entries[key]...), nil
}
