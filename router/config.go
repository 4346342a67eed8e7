package router

import (
	"golang.org/x/time/rate"

	"github.com/traPtitech/sociogram/router/api"
	"github.com/traPtitech/sociogram/router/auth"
)

// Config APIサーバー設定
type Config struct {
	// 開発モードかどうか
	Development bool
	// Version サーバーバージョン
	Version string
	// Revision サーバーリビジョン
	Revision string
	// AccessLogging アクセスログを記録するかどうか
	AccessLogging bool
	// Gzipped レスポンスをGzip圧縮するかどうか
	Gzipped bool
	// AllowOrigins CORSで許可するオリジン
	AllowOrigins []string
	// ClientURL 外部認証後のリダイレクト先クライアントURL
	ClientURL string
	// AuthRateLimit 認証APIのIPアドレスごとの秒間リクエスト数上限
	AuthRateLimit rate.Limit
	// ExternalAuth 外部認証設定
	ExternalAuth ExternalAuthConfig
}

// ExternalAuthConfig 外部認証設定
type ExternalAuthConfig struct {
	// Google Google OAuth2
	Google auth.GoogleProviderConfig
}

func provideAPIConfig(c *Config) api.Config {
	return api.Config{
		AuthRateLimit: c.AuthRateLimit,
	}
}
