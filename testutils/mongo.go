package testutils

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEnvKey 既存のMongoDBを使う場合に接続URIを指定する環境変数
const MongoEnvKey = "SOCIOGRAM_TEST_MONGODB_URI"

// MongoServer テスト用MongoDBサーバー
type MongoServer struct {
	Client   *mongo.Client
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// StartMongo テスト用MongoDBに接続します
//
// MongoEnvKeyが設定されている場合はそのサーバーに、そうでない場合はdockertestでコンテナを起動して接続します。
func StartMongo() (*MongoServer, error) {
	if uri := os.Getenv(MongoEnvKey); len(uri) > 0 {
		client, err := connect(uri)
		if err != nil {
			return nil, err
		}
		return &MongoServer{Client: client}, nil
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start resource: %w", err)
	}
	if err := resource.Expire(180); err != nil {
		return nil, err
	}

	s := &MongoServer{pool: pool, resource: resource}
	uri := fmt.Sprintf("mongodb://localhost:%s", resource.GetPort("27017/tcp"))
	if err := pool.Retry(func() error {
		client, err := connect(uri)
		if err != nil {
			return err
		}
		s.Client = client
		return nil
	}); err != nil {
		_ = pool.Purge(resource)
		return nil, err
	}
	return s, nil
}

// Database 指定した名前のデータベースを空にして返します
func (s *MongoServer) Database(name string) (*mongo.Database, error) {
	db := s.Client.Database(name)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Drop(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Close 接続を切断し、起動したコンテナを削除します
func (s *MongoServer) Close() {
	if s.Client != nil {
		_ = s.Client.Disconnect(context.Background())
	}
	if s.pool != nil && s.resource != nil {
		_ = s.pool.Purge(s.resource)
	}
}

func connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
