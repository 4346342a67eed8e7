//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package repository

import (
	"context"
	"time"

	"github.com/guregu/null"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/model"
)

// CreateUserArgs ユーザー作成引数
type CreateUserArgs struct {
	Username   string
	Email      string
	Password   string
	ProfilePic string
	GoogleID   string
}

// UpdateUserArgs User情報更新引数
type UpdateUserArgs struct {
	Username   null.String
	Email      null.String
	Bio        null.String
	ProfilePic null.String
	GoogleID   null.String
}

// IsEmpty 更新する項目が1つも無いかどうか
func (a UpdateUserArgs) IsEmpty() bool {
	return !a.Username.Valid && !a.Email.Valid && !a.Bio.Valid && !a.ProfilePic.Valid && !a.GoogleID.Valid
}

// UserRepository ユーザーリポジトリ
type UserRepository interface {
	// CreateUser ユーザーを作成します
	//
	// 成功した場合、ユーザーとnilを返します。
	// Usernameまたは Emailが既に使われている場合、ErrAlreadyExistsを返します。
	// DBによるエラーを返すことがあります。
	CreateUser(ctx context.Context, args CreateUserArgs) (*model.User, error)
	// GetUser 指定したIDのユーザーを取得します
	//
	// 成功した場合、ユーザーとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetUser(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	// GetUserByUsername 指定したユーザー名のユーザーを取得します
	//
	// 存在しなかった場合、ErrNotFoundを返します。
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	// GetUserByEmail 指定したメールアドレスのユーザーを取得します
	//
	// 存在しなかった場合、ErrNotFoundを返します。
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// GetUserByGoogleID 指定したGoogleアカウントIDのユーザーを取得します
	//
	// 存在しなかった場合、ErrNotFoundを返します。
	GetUserByGoogleID(ctx context.Context, googleID string) (*model.User, error)
	// GetUserSummaries 指定したユーザーの要約をidsの順で取得します
	//
	// 存在しないユーザーは結果に含まれません。
	GetUserSummaries(ctx context.Context, ids []primitive.ObjectID) ([]*model.UserSummary, error)
	// SearchUsers ユーザー名またはメールアドレスに部分一致するユーザーを検索します
	//
	// 大文字小文字は区別しません。
	SearchUsers(ctx context.Context, query string) ([]*model.UserSummary, error)
	// UsernameExists 指定したユーザー名が使われているかどうかを返します
	UsernameExists(ctx context.Context, username string) (bool, error)
	// UpdateUser 指定したユーザーの情報を更新します
	//
	// 成功した場合、更新後のユーザーとnilを返します。
	// 存在しないユーザーの場合、ErrNotFoundを返します。
	// Usernameまたは Emailが既に使われている場合、ErrAlreadyExistsを返します。
	// 引数にprimitive.NilObjectIDを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	UpdateUser(ctx context.Context, id primitive.ObjectID, args UpdateUserArgs) (*model.User, error)
	// UpdateUserLastOnline 指定したユーザーの最終オンライン日時を更新します
	//
	// 成功した場合、nilを返します。
	// 引数にprimitive.NilObjectIDを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	UpdateUserLastOnline(ctx context.Context, id primitive.ObjectID, t time.Time) error
}
