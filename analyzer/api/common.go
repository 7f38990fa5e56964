package api

import (
	"runtime"
	"time"

	"nanikiru/common/http"
)

var startTime = time.Now()

// PingHandler ping 检查
func PingHandler(c *http.Context) error {
	c.Success(map[string]interface{}{
		"message":   "pong",
		"timestamp": time.Now().Unix(),
		"service":   "analyzer",
	})
	return nil
}

// HealthHandler 健康检查，分析服务没有外部依赖，进程在就算健康
func HealthHandler(c *http.Context) error {
	c.Success(map[string]interface{}{
		"healthy":    true,
		"uptime":     time.Since(startTime).String(),
		"goroutines": runtime.NumGoroutine(),
	})
	return nil
}
