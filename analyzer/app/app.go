package app

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nanikiru/analyzer/api"
	"nanikiru/analyzer/application/service"
	"nanikiru/common/config"
	"nanikiru/common/http"
	"nanikiru/common/log"
)

// NewServer 组装 HTTP 服务器，测试里直接用它的 Handler
func NewServer(cfg *config.Config, svc *service.AnalysisService) (*http.HttpServer, error) {
	// 使用 common 封装的 gin 库 http-server
	server := http.NewHttpServer(
		http.WithPort(cfg.HttpPort),
		http.WithMode(cfg.Log.Level),
	)

	// 中间处理器注册
	server.Use(
		http.RequestIDMiddleware(),
		http.LoggerMiddleware(),
		http.CorsMiddleware(),
	)

	// 路由注册，分析接口可选限流
	var limits []http.MiddlewareFunc
	if cfg.RateLimit.RPS > 0 {
		limit, err := http.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		if err != nil {
			return nil, err
		}
		limits = append(limits, limit)
	}
	api.RegisterRoutes(server, svc, limits...)
	return server, nil
}

func Run(ctx context.Context) error {
	cfg := config.Get()
	svc, err := service.NewAnalysisService(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	config.OnChange(func(c *config.Config) {
		log.SetLevel(c.Log.Level)
		svc.Reload(c)
	})

	server, err := NewServer(cfg, svc)
	if err != nil {
		return err
	}

	go func() {
		log.Info("启动 HTTP 服务器，端口: %d", cfg.HttpPort)
		if err := server.Start(); err != nil {
			// http.ErrServerClosed 是正常关闭，不需要记录为错误
			if !errors.Is(err, nethttp.ErrServerClosed) {
				log.Fatal("HTTP 服务器启动失败: %v", err)
			}
		}
	}()

	stop := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP 服务器关闭失败: %v", err)
		} else {
			log.Info("HTTP 服务器已优雅关闭")
		}
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
	defer signal.Stop(c)
	select {
	case <-ctx.Done():
		stop()
	case s := <-c:
		stop()
		log.Info("收到信号 %v，服务停止", s)
	}
	return nil
}
