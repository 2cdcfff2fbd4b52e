package config

// Redis используется для кеширования публичных ответов (каталог залов).
// Если подключение при старте не удалось, возвращается nil и кеширование
// отключается - приложение продолжает работать без него.

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient создает Redis-клиент по загруженной конфигурации.
// Возвращает nil, если адрес не задан или сервер недоступен.
func NewRedisClient(cfg *Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
