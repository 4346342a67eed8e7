//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/model"
)

// MessageRepository ダイレクトメッセージリポジトリ
type MessageRepository interface {
	// CreateMessage senderからreceiverへのメッセージを作成します
	//
	// 2人の会話が存在しない場合は作成します。
	// 引数にprimitive.NilObjectIDを指定した場合、ErrNilIDを返します。
	CreateMessage(ctx context.Context, senderID, receiverID primitive.ObjectID, text string) (*model.Message, error)
	// GetConversationMessages 2人の会話のメッセージを古い順に取得します
	//
	// 会話が存在しない場合は空配列を返します。
	GetConversationMessages(ctx context.Context, userID, otherID primitive.ObjectID) ([]*model.Message, error)
}
