package cmd

import (
	"context"
	"image"
	"time"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/time/rate"

	"github.com/traPtitech/sociogram/router"
	"github.com/traPtitech/sociogram/router/auth"
	"github.com/traPtitech/sociogram/service/imaging"
	"github.com/traPtitech/sociogram/utils/jwt"
	"github.com/traPtitech/sociogram/utils/storage"
)

// Config 設定
type Config struct {
	// DevMode 開発モードかどうか (default: false)
	DevMode bool `mapstructure:"dev" yaml:"dev"`
	// Pprof pprofを有効にするかどうか (default: false)
	Pprof bool `mapstructure:"pprof" yaml:"pprof"`

	// Origin サーバーオリジン (default: http://localhost:5000)
	Origin string `mapstructure:"origin" yaml:"origin"`
	// ClientURL クライアントのURL CORSの許可と外部認証後のリダイレクトに使います (default: http://localhost:3000)
	ClientURL string `mapstructure:"clientUrl" yaml:"clientUrl"`
	// Port サーバーポート番号 (default: 5000)
	Port int `mapstructure:"port" yaml:"port"`
	// Gzip レスポンスのGZIP圧縮を有効にするかどうか (default: true)
	Gzip bool `mapstructure:"gzip" yaml:"gzip"`
	// ShutdownTimeout 終了処理のタイムアウト秒数 (default: 10)
	ShutdownTimeout int `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout"`
	// AuthRateLimit 認証APIのIPアドレスごとの秒間リクエスト数上限. 0は無制限 (default: 1)
	AuthRateLimit float64 `mapstructure:"authRateLimit" yaml:"authRateLimit"`

	// AccessLog HTTPアクセスログ設定
	AccessLog struct {
		// Enabled 有効かどうか (default: true)
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"accessLog" yaml:"accessLog"`

	// Imaging 画像処理設定
	Imaging struct {
		// MaxPixels 処理可能な最大画素数 (default: 4096*4096)
		MaxPixels int `mapstructure:"maxPixels" yaml:"maxPixels"`
		// Concurrency 処理並列数 (default: 2)
		Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
	} `mapstructure:"imaging" yaml:"imaging"`

	// MongoDB データベース接続設定
	MongoDB struct {
		// URI 接続URI (default: mongodb://localhost:27017)
		URI string `mapstructure:"uri" yaml:"uri"`
		// Database データベース名 (default: sociogram)
		Database string `mapstructure:"database" yaml:"database"`
		// MaxPoolSize 最大接続数. 0は無制限 (default: 100)
		MaxPoolSize uint64 `mapstructure:"maxPoolSize" yaml:"maxPoolSize"`
		// ConnectTimeout 接続タイムアウト秒数 (default: 10)
		ConnectTimeout int `mapstructure:"connectTimeout" yaml:"connectTimeout"`
	} `mapstructure:"mongodb" yaml:"mongodb"`

	// JWT JsonWebToken設定
	JWT struct {
		// Secret HS256署名鍵
		Secret string `mapstructure:"secret" yaml:"secret"`
		// ExpiresIn 有効期間 (default: 168h)
		ExpiresIn time.Duration `mapstructure:"expiresIn" yaml:"expiresIn"`
	} `mapstructure:"jwt" yaml:"jwt"`

	// Storage ファイルストレージ設定
	Storage struct {
		// Type ストレージタイプ (default: local)
		// 	local: ローカルストレージ
		// 	s3: S3互換オブジェクトストレージ
		// 	memory: メモリストレージ
		Type string `mapstructure:"type" yaml:"type"`

		// Local ローカルストレージ設定
		Local struct {
			// Dir 保存先ディレクトリ (default: ./storage)
			Dir string `mapstructure:"dir" yaml:"dir"`
		} `mapstructure:"local" yaml:"local"`

		// S3 S3互換オブジェクトストレージ設定
		S3 struct {
			// Bucket バケット名
			Bucket string `mapstructure:"bucket" yaml:"bucket"`
			// Region リージョン
			Region string `mapstructure:"region" yaml:"region"`
			// Endpoint エンドポイント AWS以外のS3互換ストレージを使う場合に指定
			Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
			// AccessKey アクセスキー
			AccessKey string `mapstructure:"accessKey" yaml:"accessKey"`
			// SecretKey シークレットキー
			SecretKey string `mapstructure:"secretKey" yaml:"secretKey"`
			// ForcePathStyle パススタイルのURLを使うかどうか
			ForcePathStyle bool `mapstructure:"forcePathStyle" yaml:"forcePathStyle"`
		} `mapstructure:"s3" yaml:"s3"`
	} `mapstructure:"storage" yaml:"storage"`

	// ExternalAuth 外部認証設定
	ExternalAuth struct {
		Google struct {
			ClientID     string `mapstructure:"clientId" yaml:"clientId"`
			ClientSecret string `mapstructure:"clientSecret" yaml:"clientSecret"`
			// CallbackURL 省略した場合はOriginから組み立てます
			CallbackURL string `mapstructure:"callbackUrl" yaml:"callbackUrl"`
		} `mapstructure:"google" yaml:"google"`
	} `mapstructure:"externalAuth" yaml:"externalAuth"`
}

// Configのデフォルト値設定
func init() {
	viper.SetDefault("dev", false)
	viper.SetDefault("pprof", false)
	viper.SetDefault("origin", "http://localhost:5000")
	viper.SetDefault("clientUrl", "http://localhost:3000")
	viper.SetDefault("port", 5000)
	viper.SetDefault("gzip", true)
	viper.SetDefault("shutdownTimeout", 10)
	viper.SetDefault("authRateLimit", 1)
	viper.SetDefault("accessLog.enabled", true)
	viper.SetDefault("imaging.maxPixels", 4096*4096)
	viper.SetDefault("imaging.concurrency", 2)
	viper.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongodb.database", "sociogram")
	viper.SetDefault("mongodb.maxPoolSize", 100)
	viper.SetDefault("mongodb.connectTimeout", 10)
	viper.SetDefault("jwt.secret", "")
	viper.SetDefault("jwt.expiresIn", jwt.DefaultExpiresIn)
	viper.SetDefault("storage.type", "local")
	viper.SetDefault("storage.local.dir", "./storage")
	viper.SetDefault("storage.s3.bucket", "")
	viper.SetDefault("storage.s3.region", "")
	viper.SetDefault("storage.s3.endpoint", "")
	viper.SetDefault("storage.s3.accessKey", "")
	viper.SetDefault("storage.s3.secretKey", "")
	viper.SetDefault("storage.s3.forcePathStyle", false)
	viper.SetDefault("externalAuth.google.clientId", "")
	viper.SetDefault("externalAuth.google.clientSecret", "")
	viper.SetDefault("externalAuth.google.callbackUrl", "")
}

func (c Config) getFileStorage(ctx context.Context) (storage.FileStorage, error) {
	switch c.Storage.Type {
	case "s3":
		return storage.NewS3FileStorage(ctx, storage.S3Config{
			Bucket:         c.Storage.S3.Bucket,
			Region:         c.Storage.S3.Region,
			Endpoint:       c.Storage.S3.Endpoint,
			AccessKey:      c.Storage.S3.AccessKey,
			SecretKey:      c.Storage.S3.SecretKey,
			ForcePathStyle: c.Storage.S3.ForcePathStyle,
		})
	case "memory":
		return storage.NewInMemoryFileStorage(), nil
	default:
		return storage.NewLocalFileStorage(c.Storage.Local.Dir)
	}
}

func (c Config) getDatabase(ctx context.Context) (*mongo.Client, error) {
	timeout := time.Duration(c.MongoDB.ConnectTimeout) * time.Second
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(c.MongoDB.URI).
		SetMaxPoolSize(c.MongoDB.MaxPoolSize).
		SetConnectTimeout(timeout))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

func (c Config) getSigner() (*jwt.Signer, error) {
	return jwt.NewSigner(c.JWT.Secret, c.JWT.ExpiresIn)
}

func provideImageProcessorConfig(c *Config) imaging.Config {
	return imaging.Config{
		MaxPixels:   c.Imaging.MaxPixels,
		Concurrency: c.Imaging.Concurrency,
		MaxSize:     image.Pt(1080, 1080),
	}
}

func provideAuthGoogleProviderConfig(c *Config) auth.GoogleProviderConfig {
	callbackURL := c.ExternalAuth.Google.CallbackURL
	if len(callbackURL) == 0 {
		callbackURL = c.Origin + "/api/auth/google/callback"
	}
	return auth.GoogleProviderConfig{
		ClientID:     c.ExternalAuth.Google.ClientID,
		ClientSecret: c.ExternalAuth.Google.ClientSecret,
		CallbackURL:  callbackURL,
	}
}

func provideRouterExternalAuthConfig(c *Config) router.ExternalAuthConfig {
	return router.ExternalAuthConfig{
		Google: provideAuthGoogleProviderConfig(c),
	}
}

func provideRouterConfig(c *Config) *router.Config {
	return &router.Config{
		Development:   c.DevMode,
		Version:       Version,
		Revision:      Revision,
		AccessLogging: c.AccessLog.Enabled,
		Gzipped:       c.Gzip,
		AllowOrigins:  []string{c.ClientURL},
		ClientURL:     c.ClientURL,
		AuthRateLimit: rate.Limit(c.AuthRateLimit),
		ExternalAuth:  provideRouterExternalAuthConfig(c),
	}
}
