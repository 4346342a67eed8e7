package model

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost パスワードハッシュのbcryptコスト
const PasswordHashCost = 10

var (
	// ErrUserWrongIDOrPassword パスワードが間違っている
	ErrUserWrongIDOrPassword = errors.New("wrong password")
	// ErrUserHasNoPassword パスワードが設定されていない(外部認証のみのユーザー)
	ErrUserHasNoPassword = errors.New("password is not set")
)

// User ユーザー
type User struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Username       string               `bson:"username" json:"username"`
	Email          string               `bson:"email" json:"email"`
	Password       string               `bson:"password,omitempty" json:"-"`
	ProfilePic     string               `bson:"profilePic" json:"profilePic"`
	Bio            string               `bson:"bio" json:"bio"`
	GoogleID       string               `bson:"googleId,omitempty" json:"googleId,omitempty"`
	Friends        []primitive.ObjectID `bson:"friends" json:"friends"`
	FriendRequests []primitive.ObjectID `bson:"friendRequests" json:"friendRequests"`
	LastOnline     *time.Time           `bson:"lastOnline,omitempty" json:"lastOnline,omitempty"`
	CreatedAt      time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// HexID ユーザーIDの文字列表現を返します
func (u *User) HexID() string {
	return u.ID.Hex()
}

// HasFriend 指定したユーザーとフレンドかどうか
func (u *User) HasFriend(id primitive.ObjectID) bool {
	return containsID(u.Friends, id)
}

// HasFriendRequestFrom 指定したユーザーからの未処理のフレンドリクエストがあるかどうか
func (u *User) HasFriendRequestFrom(id primitive.ObjectID) bool {
	return containsID(u.FriendRequests, id)
}

// Authenticate パスワードを検証します
func (u *User) Authenticate(password string) error {
	if len(u.Password) == 0 {
		return ErrUserHasNoPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrUserWrongIDOrPassword
		}
		return err
	}
	return nil
}

// Summary 他のドキュメントに埋め込む用の要約を返します
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
	}
}

// HashPassword パスワードをbcryptでハッシュ化します
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UserSummary 投稿者やフレンド一覧など、他のレスポンスに埋め込まれるユーザー情報
type UserSummary struct {
	ID         primitive.ObjectID `json:"_id"`
	Username   string             `json:"username"`
	Email      string             `json:"email,omitempty"`
	ProfilePic string             `json:"profilePic"`
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
