package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message ダイレクトメッセージ
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SenderID   primitive.ObjectID `bson:"senderId" json:"senderId"`
	ReceiverID primitive.ObjectID `bson:"receiverId" json:"receiverId"`
	Message    string             `bson:"message" json:"message"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Conversation 2ユーザー間の会話
type Conversation struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Key          string               `bson:"key" json:"-"`
	Participants []primitive.ObjectID `bson:"participants" json:"participants"`
	Messages     []primitive.ObjectID `bson:"messages" json:"messages"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ConversationKey 2ユーザー間の会話を一意に表すキーを返します
//
// 引数の順序に依らず同じ値になります。
func ConversationKey(a, b primitive.ObjectID) string {
	x, y := a.Hex(), b.Hex()
	if x > y {
		x, y = y, x
	}
	return x + "_" + y
}
