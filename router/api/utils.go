package api

import (
	"errors"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/router/consts"
	"github.com/traPtitech/sociogram/router/extension/herror"
)

// bindAndValidate 構造体iにFormDataまたはJsonをデシリアライズします
func bindAndValidate(c echo.Context, i interface{}) error {
	if err := c.Bind(i); err != nil {
		return err
	}
	if err := vd.Validate(i); err != nil {
		var ie vd.InternalError
		if errors.As(err, &ie) {
			return herror.InternalServerError(ie.InternalError())
		}
		return herror.BadRequest(err)
	}
	return nil
}

// getRequestUser リクエストしてきたユーザーの情報を取得
func getRequestUser(c echo.Context) *model.User {
	return c.Get(consts.KeyUser).(*model.User)
}

// getRequestUserID リクエストしてきたユーザーIDを取得
func getRequestUserID(c echo.Context) primitive.ObjectID {
	return c.Get(consts.KeyUserID).(primitive.ObjectID)
}

// getParamObjectID URLのパスパラメータnameをObjectIDとして取得
func getParamObjectID(c echo.Context, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, herror.BadRequest("invalid id format")
	}
	return id, nil
}

// messageResponse {"message": ...}のレスポンス
func messageResponse(message string) echo.Map {
	return echo.Map{"message": message}
}
