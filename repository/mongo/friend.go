package mongo

import (
	"context"

	"github.com/leandro-lugaresi/hub"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/event"
	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
)

// AddFriendRequest implements FriendRepository interface.
func (repo *Repository) AddFriendRequest(ctx context.Context, senderID, receiverID primitive.ObjectID) error {
	if senderID.IsZero() || receiverID.IsZero() {
		return repository.ErrNilID
	}
	res, err := repo.db.Collection(usersCollection).UpdateOne(ctx,
		bson.M{"_id": receiverID},
		bson.M{"$addToSet": bson.M{"friendRequests": senderID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	repo.forgetUser(receiverID)
	return nil
}

// RemoveFriendRequest implements FriendRepository interface.
func (repo *Repository) RemoveFriendRequest(ctx context.Context, senderID, receiverID primitive.ObjectID) error {
	if senderID.IsZero() || receiverID.IsZero() {
		return repository.ErrNilID
	}
	res, err := repo.db.Collection(usersCollection).UpdateOne(ctx,
		bson.M{"_id": receiverID, "friendRequests": senderID},
		bson.M{"$pull": bson.M{"friendRequests": senderID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	repo.forgetUser(receiverID)
	return nil
}

// AcceptFriendRequest implements FriendRepository interface.
func (repo *Repository) AcceptFriendRequest(ctx context.Context, senderID, receiverID primitive.ObjectID) error {
	if senderID.IsZero() || receiverID.IsZero() {
		return repository.ErrNilID
	}
	users := repo.db.Collection(usersCollection)

	// リクエストの消費とフレンド追加を同じドキュメント更新で行う
	res, err := users.UpdateOne(ctx,
		bson.M{"_id": receiverID, "friendRequests": senderID},
		bson.M{
			"$pull":     bson.M{"friendRequests": senderID},
			"$addToSet": bson.M{"friends": senderID},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	repo.forgetUser(receiverID)

	_, err = users.UpdateOne(ctx,
		bson.M{"_id": senderID},
		bson.M{
			"$pull":     bson.M{"friendRequests": receiverID},
			"$addToSet": bson.M{"friends": receiverID},
		})
	if err != nil {
		return err
	}
	repo.forgetUser(senderID)

	repo.publish(event.FriendshipCreated, hub.Fields{
		"user_id":   senderID.Hex(),
		"friend_id": receiverID.Hex(),
	})
	return nil
}

// GetFriends implements FriendRepository interface.
func (repo *Repository) GetFriends(ctx context.Context, userID primitive.ObjectID) ([]*model.UserSummary, error) {
	user, err := repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return repo.GetUserSummaries(ctx, user.Friends)
}

// GetFriendRequests implements FriendRepository interface.
func (repo *Repository) GetFriendRequests(ctx context.Context, userID primitive.ObjectID) ([]*model.UserSummary, error) {
	user, err := repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return repo.GetUserSummaries(ctx, user.FriendRequests)
}
