package utils

import (
	"testing"
	"time"
)

func TestRateLimiter_Burst(t *testing.T) {
	now := time.Unix(0, 0)
	rl := NewRateLimiter(1, 3)
	rl.lastRefill = now
	rl.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if !rl.Allow() {
			t.Fatalf("request %d should pass within burst", i)
		}
	}
	if rl.Allow() {
		t.Fatalf("fourth request should be limited")
	}

	now = now.Add(time.Second)
	if !rl.Allow() {
		t.Fatalf("one token should refill after a second")
	}
}

func newTestKeyedLimiter(t *testing.T, idle time.Duration) *KeyedLimiter {
	t.Helper()
	k, err := NewKeyedLimiter(0, 1, idle, 1000)
	if err != nil {
		t.Fatalf("new limiter: %v", err)
	}
	t.Cleanup(k.Close)
	return k
}

func TestKeyedLimiter(t *testing.T) {
	k := newTestKeyedLimiter(t, time.Minute)
	if !k.Allow("a") || k.Allow("a") {
		t.Fatalf("key a should get exactly one request")
	}
	if !k.Allow("b") {
		t.Fatalf("key b has its own bucket")
	}
}

func TestKeyedLimiter_IdleBucketsExpire(t *testing.T) {
	k := newTestKeyedLimiter(t, 50*time.Millisecond)
	if !k.Allow("a") || k.Allow("a") {
		t.Fatalf("key a should get exactly one request")
	}

	time.Sleep(100 * time.Millisecond)
	if _, ok := k.buckets.Get("a"); ok {
		t.Fatalf("idle bucket should be evicted")
	}
	if !k.Allow("a") {
		t.Fatalf("expired key should start with a fresh bucket")
	}
}
