package api

import (
	"nanikiru/analyzer/application/service"
	"nanikiru/common/http"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(server *http.HttpServer, svc *service.AnalysisService, middlewares ...http.MiddlewareFunc) {
	server.GET("/ping", PingHandler)
	server.GET("/health", HealthHandler)

	// API v1 路由组
	v1 := server.Group("/api/v1", middlewares...)
	{
		v1.POST("/shanten", ShantenHandler(svc))
		v1.POST("/discards", DiscardsHandler(svc))
	}
}
