package message

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

func NewMessageManager(repo repository.Repository, notifier notification.Notifier, logger *zap.Logger) (Manager, error) {
	return &manager{
		R: repo,
		N: notifier,
		L: logger.Named("message_manager"),
	}, nil
}

func (m *manager) Send(ctx context.Context, senderID, receiverID primitive.ObjectID, text string) (*model.Message, error) {
	if len(strings.TrimSpace(text)) == 0 {
		return nil, ErrEmptyMessage
	}
	if _, err := m.R.GetUser(ctx, receiverID); err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrNilID) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to GetUser: %w", err)
	}

	msg, err := m.R.CreateMessage(ctx, senderID, receiverID, text)
	if err != nil {
		return nil, fmt.Errorf("failed to CreateMessage: %w", err)
	}
	if senderID != receiverID {
		m.N.Notify(receiverID.Hex(), notification.NewMessageEvent, msg)
	}
	return msg, nil
}

func (m *manager) GetConversation(ctx context.Context, userID, otherID primitive.ObjectID) ([]*model.Message, error) {
	messages, err := m.R.GetConversationMessages(ctx, userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("failed to GetConversationMessages: %w", err)
	}
	return messages, nil
}
