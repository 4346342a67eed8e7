package message

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmptyMessage = errors.New("message cannot be empty")
)

// Manager ダイレクトメッセージマネージャー
type Manager interface {
	// Send senderからreceiverへメッセージを送信します
	//
	// 成功した場合、receiverにnewMessageを送信し、メッセージとnilを返します。
	// senderとreceiverが同じ場合はnewMessageを送信しません。
	// メッセージが空の場合、ErrEmptyMessageを返します。
	// receiverが存在しない場合、ErrUserNotFoundを返します。
	// DBによるエラーを返すことがあります。
	Send(ctx context.Context, senderID, receiverID primitive.ObjectID, text string) (*model.Message, error)
	// GetConversation userIDとotherIDの会話のメッセージを古い順に返します
	//
	// 会話が無い場合は空配列を返します。
	GetConversation(ctx context.Context, userID, otherID primitive.ObjectID) ([]*model.Message, error)
}
