package friend

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
	"github.com/traPtitech/sociogram/service/notification"
)

type manager struct {
	R repository.Repository
	N notification.Notifier
	L *zap.Logger
}

func NewFriendManager(repo repository.Repository, notifier notification.Notifier, logger *zap.Logger) (Manager, error) {
	return &manager{
		R: repo,
		N: notifier,
		L: logger.Named("friend_manager"),
	}, nil
}

func (m *manager) getUser(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	u, err := m.R.GetUser(ctx, id)
	if err != nil {
		switch err {
		case repository.ErrNotFound, repository.ErrNilID:
			return nil, ErrUserNotFound
		default:
			return nil, fmt.Errorf("failed to GetUser: %w", err)
		}
	}
	return u, nil
}

func (m *manager) SendRequest(ctx context.Context, senderID, receiverID primitive.ObjectID) error {
	receiver, err := m.getUser(ctx, receiverID)
	if err != nil {
		return err
	}
	sender, err := m.getUser(ctx, senderID)
	if err != nil {
		return err
	}
	if sender.ID == receiver.ID {
		return ErrSelfRequest
	}
	if sender.HasFriend(receiver.ID) {
		return ErrAlreadyFriends
	}
	if receiver.HasFriendRequestFrom(sender.ID) {
		return ErrAlreadyRequested
	}
	if sender.HasFriendRequestFrom(receiver.ID) {
		return ErrReverseRequestPending
	}

	if err := m.R.AddFriendRequest(ctx, sender.ID, receiver.ID); err != nil {
		return fmt.Errorf("failed to AddFriendRequest: %w", err)
	}
	if _, err := m.R.CreateNotification(ctx, repository.CreateNotificationArgs{
		Recipient: receiver.ID,
		Sender:    sender.ID,
		Type:      model.NotificationTypeFriendRequest,
		EntityID:  sender.ID,
	}); err != nil {
		return fmt.Errorf("failed to CreateNotification: %w", err)
	}

	m.N.Notify(receiver.HexID(), notification.FriendRequestReceivedEvent, &notification.FriendRequestReceivedPayload{
		ID:         sender.HexID(),
		Username:   sender.Username,
		ProfilePic: sender.ProfilePic,
		Message:    fmt.Sprintf("%s sent you a friend request.", sender.Username),
	})
	return nil
}

func (m *manager) AcceptRequest(ctx context.Context, receiverID, senderID primitive.ObjectID) error {
	receiver, err := m.getUser(ctx, receiverID)
	if err != nil {
		return err
	}
	sender, err := m.getUser(ctx, senderID)
	if err != nil {
		return err
	}
	if !receiver.HasFriendRequestFrom(sender.ID) {
		return ErrRequestNotFound
	}

	if err := m.R.AcceptFriendRequest(ctx, sender.ID, receiver.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("failed to AcceptFriendRequest: %w", err)
	}

	message := fmt.Sprintf("%s accepted your friend request.", receiver.Username)
	m.N.Notify(sender.HexID(), notification.FriendshipAcceptedEvent, &notification.FriendshipAcceptedPayload{
		NewFriend: notification.FriendPayload{
			ID:         receiver.HexID(),
			Username:   receiver.Username,
			ProfilePic: receiver.ProfilePic,
		},
	})
	m.N.Notify(sender.HexID(), notification.FriendRequestAcceptedEvent, &notification.FriendRequestAcceptedPayload{
		By: notification.ActorPayload{
			ID:       receiver.HexID(),
			Username: receiver.Username,
		},
		Message: message,
	})
	m.N.Notify(sender.HexID(), notification.NewNotificationEvent, &notification.NewNotificationPayload{Message: message})
	return nil
}

func (m *manager) RejectRequest(ctx context.Context, receiverID, senderID primitive.ObjectID) error {
	receiver, err := m.getUser(ctx, receiverID)
	if err != nil {
		return err
	}
	if !receiver.HasFriendRequestFrom(senderID) {
		return ErrRequestNotFound
	}

	if err := m.R.RemoveFriendRequest(ctx, senderID, receiver.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("failed to RemoveFriendRequest: %w", err)
	}

	m.N.Notify(senderID.Hex(), notification.NewNotificationEvent, &notification.NewNotificationPayload{
		Message: fmt.Sprintf("%s rejected your friend request.", receiver.Username),
	})
	return nil
}

func (m *manager) CancelRequest(ctx context.Context, senderID, receiverID primitive.ObjectID) error {
	if err := m.R.RemoveFriendRequest(ctx, senderID, receiverID); err != nil {
		switch err {
		case repository.ErrNotFound, repository.ErrNilID:
			return ErrRequestNotFound
		default:
			return fmt.Errorf("failed to RemoveFriendRequest: %w", err)
		}
	}
	return nil
}

func (m *manager) GetFriends(ctx context.Context, userID primitive.ObjectID) ([]*model.UserSummary, error) {
	friends, err := m.R.GetFriends(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to GetFriends: %w", err)
	}
	return friends, nil
}

func (m *manager) GetRequests(ctx context.Context, userID primitive.ObjectID) ([]*model.UserSummary, error) {
	requests, err := m.R.GetFriendRequests(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to GetFriendRequests: %w", err)
	}
	return requests, nil
}
