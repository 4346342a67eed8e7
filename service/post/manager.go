package post

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
)

var (
	ErrNotFound     = errors.New("post not found")
	ErrForbidden    = errors.New("you are not authorized to delete this post")
	ErrEmptyPost    = errors.New("post must have either text content or an image")
	ErrEmptyComment = errors.New("comment cannot be empty")
)

// Manager 投稿マネージャー
type Manager interface {
	// Create 投稿を作成します
	//
	// 成功した場合、投稿とnilを返します。
	// 本文と画像が両方とも空の場合、ErrEmptyPostを返します。
	// DBによるエラーを返すことがあります。
	Create(ctx context.Context, userID primitive.ObjectID, textContent, image string) (*model.Post, error)
	// Get 指定したIDの投稿を取得します
	//
	// 存在しない投稿を指定した場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	Get(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	// GetPosts クエリに一致する投稿を新しい順に取得します
	GetPosts(ctx context.Context, query repository.PostsQuery) ([]*model.Post, error)
	// Delete 指定したユーザーとして投稿を削除します
	//
	// 成功した場合、nilを返します。
	// 存在しない投稿を指定した場合、ErrNotFoundを返します。
	// 投稿者以外が削除しようとした場合、ErrForbiddenを返します。
	// DBによるエラーを返すことがあります。
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	// ToggleLike 指定したユーザーのいいねを切り替えます
	//
	// 成功した場合、更新後の投稿と、いいねした状態になったかどうかを返します。
	// 他人の投稿にいいねした場合、通知履歴を作成し、投稿者にnew-notification, post-notificationを順に送信します。
	// 存在しない投稿を指定した場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (post *model.Post, liked bool, err error)
	// Comment 投稿にコメントします
	//
	// 成功した場合、更新後の投稿とnilを返します。
	// 他人の投稿にコメントした場合、通知履歴を作成し、投稿者にnew-notification, post-notificationを順に送信します。
	// コメントが空の場合、ErrEmptyCommentを返します。
	// 存在しない投稿を指定した場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	Comment(ctx context.Context, postID, userID primitive.ObjectID, text string) (*model.Post, error)
}
