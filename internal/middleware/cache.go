package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"lounge_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// cacheWriter перехватывает тело ответа, продолжая писать клиенту
type cacheWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// cacheKey строит стабильный ключ из пути и query-строки
func cacheKey(c *gin.Context) string {
	sum := sha1.Sum([]byte(c.Request.URL.Path + "?" + c.Request.URL.RawQuery))
	return fmt.Sprintf("httpcache:%x", sum[:])
}

// CacheMiddleware кеширует успешные GET-ответы в Redis.
// При недоступном Redis работает как no-op.
func CacheMiddleware(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := cacheKey(c)

		if body, err := rdb.Get(ctx, key).Bytes(); err == nil && len(body) > 0 {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		cw := &cacheWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Header("X-Cache", "MISS")

		c.Next()

		if cw.Status() == http.StatusOK && cw.buf.Len() > 0 {
			if err := rdb.SetEx(context.Background(), key, cw.buf.Bytes(), ttl).Err(); err != nil {
				logger.Warn("failed to store response in cache", "key", key, "error", err)
			}
		}
	}
}

// InvalidateCache сбрасывает все закешированные ответы.
// Вызывается после мутаций каталога.
func InvalidateCache(rdb *redis.Client) {
	if rdb == nil {
		return
	}

	ctx := context.Background()
	iter := rdb.Scan(ctx, 0, "httpcache:*", 100).Iterator()
	for iter.Next(ctx) {
		rdb.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Warn("cache invalidation failed", "error", err)
	}
}
