package post

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

// unknownActorName 操作したユーザーが取得できなかった場合の表示名
const unknownActorName = "Someone"

type manager struct {
	R repository.Repository
	N notification.Notifier
	L *zap.Logger
}

func NewPostManager(repo repository.Repository, notifier notification.Notifier, logger *zap.Logger) (Manager, error) {
	return &manager{
		R: repo,
		N: notifier,
		L: logger.Named("post_manager"),
	}, nil
}

func convertError(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrNilID):
		return ErrNotFound
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}

func (m *manager) Create(ctx context.Context, userID primitive.ObjectID, textContent, image string) (*model.Post, error) {
	if len(strings.TrimSpace(textContent)) == 0 && len(image) == 0 {
		return nil, ErrEmptyPost
	}
	p, err := m.R.CreatePost(ctx, repository.CreatePostArgs{
		UserID:      userID,
		TextContent: textContent,
		Image:       image,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to CreatePost: %w", err)
	}
	return p, nil
}

func (m *manager) Get(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	p, err := m.R.GetPost(ctx, id)
	if err != nil {
		return nil, convertError("GetPost", err)
	}
	return p, nil
}

func (m *manager) GetPosts(ctx context.Context, query repository.PostsQuery) ([]*model.Post, error) {
	posts, err := m.R.GetPosts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to GetPosts: %w", err)
	}
	return posts, nil
}

func (m *manager) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	p, err := m.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.UserID != userID {
		return ErrForbidden
	}
	if err := m.R.DeletePost(ctx, id); err != nil {
		return convertError("DeletePost", err)
	}
	return nil
}

func (m *manager) ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (*model.Post, bool, error) {
	p, liked, err := m.R.TogglePostLike(ctx, postID, userID)
	if err != nil {
		return nil, false, convertError("TogglePostLike", err)
	}
	if !liked || p.UserID == userID {
		return p, liked, nil
	}

	if err := m.record(ctx, p, userID, model.NotificationTypeLike); err != nil {
		return nil, false, err
	}
	actor := m.actorName(ctx, userID)
	message := fmt.Sprintf("%s liked your post.", actor)
	m.N.Notify(p.UserID.Hex(), notification.NewNotificationEvent, &notification.NewNotificationPayload{Message: message})
	m.N.Notify(p.UserID.Hex(), notification.PostNotificationEvent, &notification.PostNotificationPayload{
		Type:    notification.PostNotificationLike,
		From:    actor,
		PostID:  p.ID.Hex(),
		Message: message,
	})
	return p, liked, nil
}

func (m *manager) Comment(ctx context.Context, postID, userID primitive.ObjectID, text string) (*model.Post, error) {
	if len(strings.TrimSpace(text)) == 0 {
		return nil, ErrEmptyComment
	}
	p, err := m.R.AddPostComment(ctx, postID, userID, text)
	if err != nil {
		return nil, convertError("AddPostComment", err)
	}
	if p.UserID == userID {
		return p, nil
	}

	if err := m.record(ctx, p, userID, model.NotificationTypeComment); err != nil {
		return nil, err
	}
	actor := m.actorName(ctx, userID)
	message := fmt.Sprintf("%s commented on your post.", actor)
	m.N.Notify(p.UserID.Hex(), notification.NewNotificationEvent, &notification.NewNotificationPayload{Message: message})
	m.N.Notify(p.UserID.Hex(), notification.PostNotificationEvent, &notification.PostNotificationPayload{
		Type:        notification.PostNotificationComment,
		From:        actor,
		PostID:      p.ID.Hex(),
		Message:     message,
		CommentText: text,
	})
	return p, nil
}

func (m *manager) record(ctx context.Context, p *model.Post, sender primitive.ObjectID, typ model.NotificationType) error {
	_, err := m.R.CreateNotification(ctx, repository.CreateNotificationArgs{
		Recipient: p.UserID,
		Sender:    sender,
		Type:      typ,
		EntityID:  p.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to CreateNotification: %w", err)
	}
	return nil
}

func (m *manager) actorName(ctx context.Context, userID primitive.ObjectID) string {
	u, err := m.R.GetUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			m.L.Warn("failed to get actor", zap.Error(err), zap.Stringer("userID", userID))
		}
		return unknownActorName
	}
	return u.Username
}
