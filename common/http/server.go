package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HandlerFunc func(*Context) error
type MiddlewareFunc func(*Context) error

// HttpServer HTTP 服务器封装
type HttpServer struct {
	engine *gin.Engine
	server *http.Server
	port   int
}

// ServerOption 服务器配置选项
type ServerOption func(*HttpServer)

// WithPort 设置端口
func WithPort(port int) ServerOption {
	return func(s *HttpServer) {
		s.port = port
	}
}

// WithMode 按日志级别设置 gin 运行模式，debug 之外一律 release
func WithMode(level string) ServerOption {
	return func(s *HttpServer) {
		if level == "debug" {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}
	}
}

// NewHttpServer 创建 HTTP 服务器
func NewHttpServer(opts ...ServerOption) *HttpServer {
	server := &HttpServer{
		port: 8080,
	}

	// 先应用选项，gin 模式要在创建 engine 之前确定
	for _, opt := range opts {
		opt(server)
	}

	server.engine = gin.New()
	server.engine.Use(gin.Recovery())

	return server
}

// wrapHandler 包装处理函数
func (s *HttpServer) wrapHandler(handler HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := newContext(c)
		if err := handler(ctx); err != nil {
			// 统一错误处理
			ctx.InternalServerError(err.Error())
		}
	}
}

// wrapMiddleware 包装中间件，中间件内部可以自行调用 Next
func (s *HttpServer) wrapMiddleware(middleware MiddlewareFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := newContext(c)
		if err := middleware(ctx); err != nil {
			ctx.InternalServerError(err.Error())
			c.Abort()
			return
		}
		if !c.IsAborted() {
			c.Next()
		}
	}
}

// GET 注册 GET 路由
func (s *HttpServer) GET(path string, handler HandlerFunc) {
	s.engine.GET(path, s.wrapHandler(handler))
}

// POST 注册 POST 路由
func (s *HttpServer) POST(path string, handler HandlerFunc) {
	s.engine.POST(path, s.wrapHandler(handler))
}

// Group 创建路由组
func (s *HttpServer) Group(relativePath string, middlewares ...MiddlewareFunc) *RouterGroup {
	ginGroup := s.engine.Group(relativePath)

	for _, middleware := range middlewares {
		ginGroup.Use(s.wrapMiddleware(middleware))
	}

	return &RouterGroup{
		group:  ginGroup,
		server: s,
	}
}

// RouterGroup 路由组封装
type RouterGroup struct {
	group  *gin.RouterGroup
	server *HttpServer
}

// GET 路由组 GET 方法
func (rg *RouterGroup) GET(path string, handler HandlerFunc) {
	rg.group.GET(path, rg.server.wrapHandler(handler))
}

// POST 路由组 POST 方法
func (rg *RouterGroup) POST(path string, handler HandlerFunc) {
	rg.group.POST(path, rg.server.wrapHandler(handler))
}

// Use 添加全局中间件
func (s *HttpServer) Use(middlewares ...MiddlewareFunc) {
	for _, middleware := range middlewares {
		s.engine.Use(s.wrapMiddleware(middleware))
	}
}

// Handler 底层 http.Handler，测试里配合 httptest 使用
func (s *HttpServer) Handler() http.Handler {
	return s.engine
}

// Start 启动服务器，阻塞直到关闭
func (s *HttpServer) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}

	return s.server.ListenAndServe()
}

// Shutdown 优雅关闭服务器
func (s *HttpServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
