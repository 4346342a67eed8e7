package friend

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/model"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrSelfRequest           = errors.New("you cannot send a friend request to yourself")
	ErrAlreadyFriends        = errors.New("you are already friends")
	ErrAlreadyRequested      = errors.New("friend request already sent")
	ErrReverseRequestPending = errors.New("this user has already sent you a friend request")
	ErrRequestNotFound       = errors.New("no friend request from this user")
)

// Manager フレンド関係マネージャー
type Manager interface {
	// SendRequest senderからreceiverへフレンドリクエストを送ります
	//
	// 成功した場合、通知履歴を作成し、receiverにfriend-request-receivedを送信してnilを返します。
	// どちらかのユーザーが存在しない場合、ErrUserNotFoundを返します。
	// 自分自身を指定した場合、ErrSelfRequestを返します。
	// 既にフレンドの場合、ErrAlreadyFriendsを返します。
	// 既にリクエスト済みの場合、ErrAlreadyRequestedを返します。
	// receiverからのリクエストが未処理の場合、ErrReverseRequestPendingを返します。
	// DBによるエラーを返すことがあります。
	SendRequest(ctx context.Context, senderID, receiverID primitive.ObjectID) error
	// AcceptRequest receiverがsenderからのフレンドリクエストを承認します
	//
	// 成功した場合、senderにfriendship-accepted, friend-request-accepted, new-notificationを順に送信してnilを返します。
	// どちらかのユーザーが存在しない場合、ErrUserNotFoundを返します。
	// リクエストが無い場合、ErrRequestNotFoundを返します。
	// DBによるエラーを返すことがあります。
	AcceptRequest(ctx context.Context, receiverID, senderID primitive.ObjectID) error
	// RejectRequest receiverがsenderからのフレンドリクエストを拒否します
	//
	// 成功した場合、senderにnew-notificationを送信してnilを返します。
	// receiverが存在しない場合、ErrUserNotFoundを返します。
	// リクエストが無い場合、ErrRequestNotFoundを返します。
	// DBによるエラーを返すことがあります。
	RejectRequest(ctx context.Context, receiverID, senderID primitive.ObjectID) error
	// CancelRequest senderが送ったreceiverへのフレンドリクエストを取り消します
	//
	// リクエストが無い場合、ErrRequestNotFoundを返します。
	// DBによるエラーを返すことがあります。
	CancelRequest(ctx context.Context, senderID, receiverID primitive.ObjectID) error
	// GetFriends 指定したユーザーのフレンド一覧を返します
	//
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	GetFriends(ctx context.Context, userID primitive.ObjectID) ([]*model.UserSummary, error)
	// GetRequests 指定したユーザーが受け取った未処理のフレンドリクエストの送信者一覧を返します
	//
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	GetRequests(ctx context.Context, userID primitive.ObjectID) ([]*model.UserSummary, error)
}
