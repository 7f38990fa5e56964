package metrics

import (
	"fmt"
	"net/http"

	"github.com/arl/statsviz"
)

// Serve 在 addr 上暴露运行时监控页面 /debug/statsviz/，阻塞直到出错
func Serve(addr string) error {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		return fmt.Errorf("注册 statsviz 失败: %w", err)
	}
	return http.ListenAndServe(addr, mux)
}
