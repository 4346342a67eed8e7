package middlewares

import (
	"compress/gzip"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Gzip Gzipミドルウェア
func Gzip() echo.MiddlewareFunc {
	return middleware.GzipWithConfig(middleware.GzipConfig{
		Level: gzip.BestSpeed,
		Skipper: func(c echo.Context) bool {
			// WebSocketとファイル配信は圧縮しない
			p := c.Path()
			return strings.HasPrefix(p, "/api/ws") || strings.HasPrefix(p, "/api/files")
		},
	})
}
