package mongo

import (
	"context"
	"time"

	"github.com/leandro-lugaresi/hub"
	"github.com/motoki317/sc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
)

const (
	usersCollection         = "users"
	postsCollection         = "posts"
	notificationsCollection = "notifications"
	conversationsCollection = "conversations"
	messagesCollection      = "messages"
)

// Repository リポジトリ実装
type Repository struct {
	db     *mongo.Database
	hub    *hub.Hub
	logger *zap.Logger
	users  *sc.Cache[primitive.ObjectID, *model.User]
}

// NewMongoRepository リポジトリ実装を初期化して生成します
func NewMongoRepository(db *mongo.Database, hub *hub.Hub, logger *zap.Logger) (repository.Repository, error) {
	repo := &Repository{
		db:     db,
		hub:    hub,
		logger: logger.Named("repository"),
	}
	repo.users = sc.NewMust(repo.getUser, 1*time.Hour, 1*time.Hour)
	return repo, nil
}

// Sync implements Repository interface.
func (repo *Repository) Sync(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "googleId", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
		},
		postsCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "likes", Value: 1}}},
		},
		notificationsCollection: {
			{Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		conversationsCollection: {
			{Keys: bson.D{{Key: "key", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}
	for coll, models := range indexes {
		if _, err := repo.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}

func (repo *Repository) publish(name string, fields hub.Fields) {
	repo.hub.Publish(hub.Message{
		Name:   name,
		Fields: fields,
	})
}

// now DBに保存される精度に丸めた現在時刻
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
