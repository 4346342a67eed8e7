package mongo

import (
	"context"
	"errors"

	"github.com/leandro-lugaresi/hub"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/traPtitech/sociogram/event"
	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
)

// CreateMessage implements MessageRepository interface.
func (repo *Repository) CreateMessage(ctx context.Context, senderID, receiverID primitive.ObjectID, text string) (*model.Message, error) {
	if senderID.IsZero() || receiverID.IsZero() {
		return nil, repository.ErrNilID
	}
	t := now()
	msg := &model.Message{
		ID:         primitive.NewObjectID(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    text,
		CreatedAt:  t,
		UpdatedAt:  t,
	}
	if _, err := repo.db.Collection(messagesCollection).InsertOne(ctx, msg); err != nil {
		return nil, convertError(err)
	}

	_, err := repo.db.Collection(conversationsCollection).UpdateOne(ctx,
		bson.M{"key": model.ConversationKey(senderID, receiverID)},
		bson.M{
			"$push": bson.M{"messages": msg.ID},
			"$set":  bson.M{"updatedAt": t},
			"$setOnInsert": bson.M{
				"participants": bson.A{senderID, receiverID},
				"createdAt":    t,
			},
		},
		options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}

	repo.publish(event.DirectMessageCreated, hub.Fields{
		"message_id": msg.ID.Hex(),
		"message":    msg,
	})
	return msg, nil
}

// GetConversationMessages implements MessageRepository interface.
func (repo *Repository) GetConversationMessages(ctx context.Context, userID, otherID primitive.ObjectID) ([]*model.Message, error) {
	result := make([]*model.Message, 0)

	var conv model.Conversation
	err := repo.db.Collection(conversationsCollection).FindOne(ctx,
		bson.M{"key": model.ConversationKey(userID, otherID)},
	).Decode(&conv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return result, nil
		}
		return nil, err
	}
	if len(conv.Messages) == 0 {
		return result, nil
	}

	cur, err := repo.db.Collection(messagesCollection).Find(ctx,
		bson.M{"_id": bson.M{"$in": conv.Messages}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
