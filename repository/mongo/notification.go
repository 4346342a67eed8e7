package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
)

// CreateNotification implements NotificationRepository interface.
func (repo *Repository) CreateNotification(ctx context.Context, args repository.CreateNotificationArgs) (*model.Notification, error) {
	if args.Recipient.IsZero() || args.Sender.IsZero() {
		return nil, repository.ErrNilID
	}
	if !args.Type.Valid() {
		return nil, repository.ArgError("Type", "invalid notification type")
	}
	t := now()
	n := &model.Notification{
		ID:        primitive.NewObjectID(),
		Recipient: args.Recipient,
		Sender:    args.Sender,
		Type:      args.Type,
		EntityID:  args.EntityID,
		Read:      false,
		CreatedAt: t,
		UpdatedAt: t,
	}
	if _, err := repo.db.Collection(notificationsCollection).InsertOne(ctx, n); err != nil {
		return nil, convertError(err)
	}
	return n, nil
}

// GetNotifications implements NotificationRepository interface.
func (repo *Repository) GetNotifications(ctx context.Context, recipient primitive.ObjectID) ([]*model.Notification, error) {
	cur, err := repo.db.Collection(notificationsCollection).Find(ctx,
		bson.M{"recipient": recipient},
		options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, err
	}
	result := make([]*model.Notification, 0)
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkNotificationAsRead implements NotificationRepository interface.
func (repo *Repository) MarkNotificationAsRead(ctx context.Context, id, recipient primitive.ObjectID) (*model.Notification, error) {
	if id.IsZero() {
		return nil, repository.ErrNotFound
	}
	var n model.Notification
	err := repo.db.Collection(notificationsCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": id, "recipient": recipient},
		bson.M{"$set": bson.M{"read": true, "updatedAt": now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&n)
	if err != nil {
		return nil, convertError(err)
	}
	return &n, nil
}

// MarkNotificationsAsRead implements NotificationRepository interface.
func (repo *Repository) MarkNotificationsAsRead(ctx context.Context, recipient primitive.ObjectID, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := repo.db.Collection(notificationsCollection).UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}, "recipient": recipient, "read": false},
		bson.M{"$set": bson.M{"read": true, "updatedAt": now()}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// MarkAllNotificationsAsRead implements NotificationRepository interface.
func (repo *Repository) MarkAllNotificationsAsRead(ctx context.Context, recipient primitive.ObjectID, types ...model.NotificationType) (int64, error) {
	filter := bson.M{"recipient": recipient, "read": false}
	if len(types) > 0 {
		filter["type"] = bson.M{"$in": types}
	}
	res, err := repo.db.Collection(notificationsCollection).UpdateMany(ctx,
		filter,
		bson.M{"$set": bson.M{"read": true, "updatedAt": now()}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
