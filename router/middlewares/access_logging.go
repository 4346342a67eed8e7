package middlewares

import (
	"strconv"
	"strings"
	"time"

	"github.com/blendle/zapdriver"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/traPtitech/sociogram/router/consts"
	"github.com/traPtitech/sociogram/router/extension"
)

func skipAccessLog(path string) bool {
	return strings.HasPrefix(path, "/api/ping") || strings.HasPrefix(path, "/api/metrics")
}

// AccessLogging アクセスログミドルウェア
//
// devがtrueの場合は1行の簡易形式で、そうでない場合はCloud Logging形式で出力します。
func AccessLogging(logger *zap.Logger, dev bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipAccessLog(c.Path()) {
				return next(c)
			}

			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			latency := time.Since(start)

			req := c.Request()
			res := c.Response()
			if dev {
				logger.Sugar().Infof("%3d | %13v | %-6s %s", res.Status, latency, req.Method, req.URL)
				return nil
			}

			fields := []zap.Field{
				zap.String("requestId", extension.GetRequestID(c)),
				zapdriver.HTTP(&zapdriver.HTTPPayload{
					RequestMethod: req.Method,
					Status:        res.Status,
					UserAgent:     req.UserAgent(),
					RemoteIP:      c.RealIP(),
					Referer:       req.Referer(),
					Protocol:      req.Proto,
					RequestURL:    req.URL.String(),
					RequestSize:   req.Header.Get(echo.HeaderContentLength),
					ResponseSize:  strconv.FormatInt(res.Size, 10),
					Latency:       strconv.FormatFloat(latency.Seconds(), 'f', 9, 64) + "s",
				}),
			}
			if uid, ok := c.Get(consts.KeyUserID).(primitive.ObjectID); ok {
				fields = append(fields, zap.String("userId", uid.Hex()))
			}
			logger.Info("", fields...)
			return nil
		}
	}
}
