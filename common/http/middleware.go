package http

import (
	"time"

	"nanikiru/common/log"
	"nanikiru/common/utils"

	"github.com/google/uuid"
)

// CorsMiddleware 跨域中间件，分析接口给静态页面调用
func CorsMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		if c.GetHeader("Origin") != "" {
			c.SetHeader("Access-Control-Allow-Origin", "*")
			c.SetHeader("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.SetHeader("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Request-ID")
		}

		// 处理预检请求
		if c.Method() == "OPTIONS" {
			c.AbortWithStatus(204)
		}
		return nil
	}
}

// LoggerMiddleware 记录请求耗时
func LoggerMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		start := time.Now()
		c.Next()
		log.Info("HTTP %s %s %d from %s, request=%s, cost=%v",
			c.Method(), c.Path(), c.Status(), c.ClientIP(), c.GetString("requestID"), time.Since(start))
		return nil
	}
}

// RequestIDMiddleware 透传或生成请求 ID
func RequestIDMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("requestID", requestID)
		c.SetHeader("X-Request-ID", requestID)
		return nil
	}
}

const (
	rateLimitIdle    = 5 * time.Minute // 闲置多久回收 IP 的令牌桶
	rateLimitMaxKeys = 1 << 16
)

// RateLimitMiddleware 按客户端 IP 限流，试打计算比较重
func RateLimitMiddleware(rps int, burst int) (MiddlewareFunc, error) {
	limiter, err := utils.NewKeyedLimiter(rps, burst, rateLimitIdle, rateLimitMaxKeys)
	if err != nil {
		return nil, err
	}
	return func(c *Context) error {
		if !limiter.Allow(c.ClientIP()) {
			c.JSON(429, NewResponse(CodeTooManyRequests, "请求过于频繁", nil))
			c.Abort()
		}
		return nil
	}, nil
}
