package cache

import "time"

// BytesCache stores raw bytes with a TTL. Both the in-process and the Redis
// implementations satisfy it, so callers pick one at wiring time.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
