// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// keyPrefix is the Valkey key prefix for cached responses.
	keyPrefix = "api:"

	// DefaultTTL is how long a response stays cached.
	DefaultTTL = 5 * time.Minute
)

// ResponseCache stores JSON response bodies in Valkey, keyed by request
// URI. A nil *ResponseCache is valid and caches nothing.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given Valkey client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Key returns the Valkey key for a request URI.
func Key(uri string) string {
	return keyPrefix + uri
}

// Get returns the cached body for a request URI.
func (rc *ResponseCache) Get(ctx context.Context, uri string) ([]byte, bool) {
	if rc == nil {
		return nil, false
	}
	val, err := rc.client.Get(ctx, Key(uri)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "uri", uri, "error", err)
		return nil, false
	}
	slog.Debug("response cache hit", "uri", uri)
	return val, true
}

// Set stores a body for a request URI with the configured TTL.
func (rc *ResponseCache) Set(ctx context.Context, uri string, body []byte) {
	if rc == nil {
		return
	}
	if err := rc.client.Set(ctx, Key(uri), body, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "uri", uri, "error", err)
	}
}

// InvalidateAll removes every cached response by scanning for the prefix.
// Called after any write to posts or categories, since list, search and
// lookup responses may all change.
func (rc *ResponseCache) InvalidateAll(ctx context.Context) {
	if rc == nil {
		return
	}
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := rc.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("response cache cleared", "deleted", deleted)
	}
}

// Handler serves GET requests from the cache and stores successful
// responses from next. Other methods pass straight through.
func (rc *ResponseCache) Handler(next http.Handler) http.Handler {
	if rc == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		uri := r.URL.RequestURI()
		if body, ok := rc.Get(r.Context(), uri); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			w.Write(body)
			return
		}

		rec := &recorder{ResponseWriter: w, status: http.StatusOK}
		w.Header().Set("X-Cache", "MISS")
		next.ServeHTTP(rec, r)
		if rec.status == http.StatusOK {
			rc.Set(r.Context(), uri, rec.body.Bytes())
		}
	})
}

// recorder passes a response through while keeping a copy of the body.
type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
