package validator

import (
	"errors"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/model"
)

// UserNameRule ユーザー名バリデーションルール
var UserNameRule = []vd.Rule{
	vd.RuneLength(3, 25),
}

// UserNameRuleRequired ユーザー名バリデーションルール with Required
var UserNameRuleRequired = append([]vd.Rule{
	vd.Required,
}, UserNameRule...)

// EmailRule メールアドレスバリデーションルール
var EmailRule = []vd.Rule{
	is.EmailFormat,
}

// EmailRuleRequired メールアドレスバリデーションルール with Required
var EmailRuleRequired = append([]vd.Rule{
	vd.Required,
}, EmailRule...)

// PasswordRuleRequired パスワードバリデーションルール with Required
var PasswordRuleRequired = []vd.Rule{
	vd.Required,
	vd.RuneLength(1, 72),
}

// BioRule 自己紹介バリデーションルール
var BioRule = []vd.Rule{
	vd.RuneLength(0, 100),
}

// PostTextRule 投稿本文バリデーションルール
var PostTextRule = []vd.Rule{
	vd.RuneLength(0, model.PostTextMaxLength),
}

// CommentTextRule コメントバリデーションルール
var CommentTextRule = []vd.Rule{
	vd.RuneLength(0, model.CommentTextMaxLength),
}

// ObjectIDHex ObjectIDの16進文字列表現であることを検証するルール
var ObjectIDHex = vd.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if len(s) == 0 {
		return nil
	}
	if !primitive.IsValidObjectID(s) {
		return errors.New("must be a valid id")
	}
	return nil
})
