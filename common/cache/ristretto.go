package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// LocalCache 基于 ristretto 的本地缓存，支持 TTL；写入是异步的，Set 之后不保证立刻可读
// 底层缓存存 interface{}，取出时按 V 断言
type LocalCache[V any] struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewLocalCache 创建本地缓存
// maxCost: 最大成本，每个条目按 1 计，即最多条目数
// ttl: 默认过期时间，<=0 表示不过期
func NewLocalCache[V any](maxCost int64, ttl time.Duration) (*LocalCache[V], error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        maxCost * 10, // 官方建议计数器为条目数的 10 倍
		MaxCost:            maxCost,
		BufferItems:        64,
		// 成本只按条目计，不加 ristretto 内部的条目开销
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 ristretto 缓存失败: %w", err)
	}

	return &LocalCache[V]{
		cache: cache,
		ttl:   ttl,
	}, nil
}

// Set 使用默认 TTL
func (c *LocalCache[V]) Set(key string, value V) bool {
	return c.SetWithTTL(key, value, c.ttl)
}

func (c *LocalCache[V]) SetWithTTL(key string, value V, ttl time.Duration) bool {
	if ttl <= 0 {
		return c.cache.Set(key, value, 1)
	}
	return c.cache.SetWithTTL(key, value, 1, ttl)
}

func (c *LocalCache[V]) Get(key string) (V, bool) {
	var zero V
	v, ok := c.cache.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(V)
	if !ok {
		return zero, false
	}
	return typed, true
}

func (c *LocalCache[V]) Delete(key string) {
	c.cache.Del(key)
}

// Wait 等待缓冲中的写入生效
func (c *LocalCache[V]) Wait() {
	c.cache.Wait()
}

func (c *LocalCache[V]) Close() {
	c.cache.Close()
}
