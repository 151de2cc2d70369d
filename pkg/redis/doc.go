// Package redis connects to Redis with go-redis and exposes a small
// context-aware key/value Storage on top of it.
//
// Connect parses REDIS_URL, pings with retries until the server answers or
// ConnectTimeout elapses, and returns a ready *redis.Client. Healthcheck
// adapts a client to the func(ctx) error shape used by the /healthz handler.
//
// Storage keeps raw byte values under an optional key prefix without expiry.
// A missing key is reported as a nil value and a nil error.
package redis
