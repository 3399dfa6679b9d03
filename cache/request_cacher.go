package cache

// RequestCacher keeps, per key, the MaxNumber most recently written values, newest first.
type RequestCacher interface {
	Write(key string, value []byte) error
	Read(key string) ([]string, error)
}
