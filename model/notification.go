package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType 通知の種類
type NotificationType string

const (
	// NotificationTypeLike 投稿へのいいね EntityIDは投稿ID
	NotificationTypeLike NotificationType = "like"
	// NotificationTypeComment 投稿へのコメント EntityIDは投稿ID
	NotificationTypeComment NotificationType = "comment"
	// NotificationTypeFriendRequest フレンドリクエスト EntityIDは送信者のユーザーID
	NotificationTypeFriendRequest NotificationType = "friend_request"
)

// Valid 有効な種類かどうか
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeLike, NotificationTypeComment, NotificationTypeFriendRequest:
		return true
	}
	return false
}

// Notification 通知の履歴
//
// フレンドリクエストが処理済みかどうかはこの既読フラグではなく、受信者のFriendRequestsで判断します。
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Recipient primitive.ObjectID `bson:"recipient" json:"recipient"`
	Sender    primitive.ObjectID `bson:"sender" json:"sender"`
	Type      NotificationType   `bson:"type" json:"type"`
	EntityID  primitive.ObjectID `bson:"entityId" json:"entityId"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
