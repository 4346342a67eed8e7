package middlewares

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traPtitech/sociogram/router/extension"
	"github.com/traPtitech/sociogram/router/extension/herror"
)

// clientGone クライアントが先に切断したことによるエラーかどうか
func clientGone(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET)
}

// Recovery ハンドラー内のpanicを500エラーに変換するミドルウェア
func Recovery(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				pe, ok := r.(error)
				if !ok {
					pe = fmt.Errorf("%v", r)
				}
				if clientGone(pe) {
					logger.Warn("client disconnected", zap.String("requestId", extension.GetRequestID(c)), zap.Error(pe))
					err = nil
					return
				}
				err = herror.Panic(pe)
			}()
			return next(c)
		}
	}
}
