// Package cache read-through кэш справочников в Redis.
// Кэш необязательный: без REDIS_ADDR сервис ходит сразу в базу,
// и любая ошибка Redis тоже деградирует до похода в базу.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TTL справочников. Зоны и расписание периодов меняются руками и редко.
const defaultTTL = 5 * time.Minute

type Cache struct {
	client *redis.Client
	logger *zap.Logger
}

// New создаёт кэш. Пустой addr даёт no-op кэш.
func New(addr string, logger *zap.Logger) *Cache {
	if addr == "" {
		return &Cache{logger: logger}
	}
	return &Cache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		logger: logger,
	}
}

// Get читает значение в dest. Возвращает false на промахе или любой ошибке.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c.client == nil {
		return false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		c.logger.Warn("Cache payload corrupted", zap.String("key", key), zap.Error(err))
		return false
	}

	return true
}

// Set кладёт значение с дефолтным TTL. Ошибки только логируются.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c.client == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, key, payload, defaultTTL).Err(); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Close закрывает соединение с Redis
func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
