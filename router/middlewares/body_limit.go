package middlewares

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/sociogram/router/extension/herror"
)

// RequestBodyLengthLimit リクエストボディの大きさをlimitバイトまでに制限するミドルウェア
//
// ContentLengthが分かっている場合は読み取る前に413で拒否します。
func RequestBodyLengthLimit(limit int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.ContentLength > limit {
				return herror.HTTPError(http.StatusRequestEntityTooLarge, fmt.Sprintf("the request must be smaller than %dMB", limit>>20))
			}
			req.Body = http.MaxBytesReader(c.Response(), req.Body, limit)
			return next(c)
		}
	}
}
