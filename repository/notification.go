//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/model"
)

// CreateNotificationArgs 通知作成引数
type CreateNotificationArgs struct {
	Recipient primitive.ObjectID
	Sender    primitive.ObjectID
	Type      model.NotificationType
	EntityID  primitive.ObjectID
}

// NotificationRepository 通知履歴リポジトリ
type NotificationRepository interface {
	// CreateNotification 通知を作成します
	//
	// 無効なTypeを指定した場合、ArgumentErrorを返します。
	CreateNotification(ctx context.Context, args CreateNotificationArgs) (*model.Notification, error)
	// GetNotifications 指定したユーザー宛ての通知を新しい順に取得します
	GetNotifications(ctx context.Context, recipient primitive.ObjectID) ([]*model.Notification, error)
	// MarkNotificationAsRead 指定した通知を既読にします
	//
	// 存在しないか、recipient宛てでない場合、ErrNotFoundを返します。
	MarkNotificationAsRead(ctx context.Context, id, recipient primitive.ObjectID) (*model.Notification, error)
	// MarkNotificationsAsRead recipient宛ての指定した通知を既読にします
	//
	// 既読にした件数を返します。
	MarkNotificationsAsRead(ctx context.Context, recipient primitive.ObjectID, ids []primitive.ObjectID) (int64, error)
	// MarkAllNotificationsAsRead recipient宛ての指定した種類の未読通知を全て既読にします
	//
	// 既読にした件数を返します。
	MarkAllNotificationsAsRead(ctx context.Context, recipient primitive.ObjectID, types ...model.NotificationType) (int64, error)
}
