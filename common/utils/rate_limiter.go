package utils

import (
	"sync"
	"time"

	"nanikiru/common/cache"
)

// RateLimiter 令牌桶
type RateLimiter struct {
	rate       float64
	capacity   float64
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
	now        func() time.Time
}

// NewRateLimiter 创建一个新的限流器
// rate: 每秒补充的令牌数
// burst: 桶的容量，允许的突发请求数
func NewRateLimiter(rate int, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		rate:       float64(rate),
		capacity:   float64(burst),
		tokens:     float64(burst),
		lastRefill: time.Now(),
		now:        time.Now,
	}
}

// Allow 判断当前请求是否允许通过
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	elapsed := now.Sub(rl.lastRefill).Seconds()
	rl.tokens = min(rl.capacity, rl.tokens+elapsed*rl.rate)
	rl.lastRefill = now

	if rl.tokens >= 1.0 {
		rl.tokens -= 1.0
		return true
	}
	return false
}

// KeyedLimiter 按 key（客户端 IP）各自限流，桶放在本地缓存里，闲置 idle 后过期回收
// 过期后再来的请求拿到一个满的新桶
type KeyedLimiter struct {
	rate    int
	burst   int
	idle    time.Duration
	mu      sync.Mutex
	buckets *cache.LocalCache[*RateLimiter]
}

// NewKeyedLimiter maxKeys 为同时保留的桶数上限
func NewKeyedLimiter(rate int, burst int, idle time.Duration, maxKeys int64) (*KeyedLimiter, error) {
	buckets, err := cache.NewLocalCache[*RateLimiter](maxKeys, idle)
	if err != nil {
		return nil, err
	}
	return &KeyedLimiter{
		rate:    rate,
		burst:   burst,
		idle:    idle,
		buckets: buckets,
	}, nil
}

func (k *KeyedLimiter) Allow(key string) bool {
	return k.bucket(key).Allow()
}

func (k *KeyedLimiter) bucket(key string) *RateLimiter {
	if rl, ok := k.buckets.Get(key); ok {
		return rl
	}

	// 缓存写入是异步的，加锁并等待写入生效，避免同一 IP 并发拿到多个桶
	k.mu.Lock()
	defer k.mu.Unlock()
	if rl, ok := k.buckets.Get(key); ok {
		return rl
	}
	rl := NewRateLimiter(k.rate, k.burst)
	k.buckets.Set(key, rl)
	k.buckets.Wait()
	return rl
}

func (k *KeyedLimiter) Close() {
	k.buckets.Close()
}
