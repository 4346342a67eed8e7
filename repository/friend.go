//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/model"
)

// FriendRepository フレンド関係リポジトリ
//
// 未処理のフレンドリクエストは受信者のUser.FriendRequestsに送信者IDとして保持されます。
type FriendRepository interface {
	// AddFriendRequest senderからreceiverへのフレンドリクエストを追加します
	//
	// 既に追加されている場合は何もしません。
	// receiverが存在しない場合、ErrNotFoundを返します。
	// 引数にprimitive.NilObjectIDを指定した場合、ErrNilIDを返します。
	AddFriendRequest(ctx context.Context, senderID, receiverID primitive.ObjectID) error
	// RemoveFriendRequest senderからreceiverへのフレンドリクエストを削除します
	//
	// リクエストが存在しなかった場合、ErrNotFoundを返します。
	RemoveFriendRequest(ctx context.Context, senderID, receiverID primitive.ObjectID) error
	// AcceptFriendRequest senderからreceiverへのフレンドリクエストを承認し、双方をフレンドにします
	//
	// リクエストが存在しなかった場合、ErrNotFoundを返します。
	AcceptFriendRequest(ctx context.Context, senderID, receiverID primitive.ObjectID) error
	// GetFriends 指定したユーザーのフレンド一覧を取得します
	//
	// 存在しないユーザーの場合、ErrNotFoundを返します。
	GetFriends(ctx context.Context, userID primitive.ObjectID) ([]*model.UserSummary, error)
	// GetFriendRequests 指定したユーザーが受け取った未処理のフレンドリクエストの送信者一覧を取得します
	//
	// 存在しないユーザーの場合、ErrNotFoundを返します。
	GetFriendRequests(ctx context.Context, userID primitive.ObjectID) ([]*model.UserSummary, error)
}
