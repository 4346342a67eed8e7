package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/sociogram/router/consts"
	"github.com/traPtitech/sociogram/router/extension/herror"
	"github.com/traPtitech/sociogram/service/imaging"
	"github.com/traPtitech/sociogram/utils/storage"
)

// UploadImage POST /upload
func (h *Handlers) UploadImage(c echo.Context) error {
	user := getRequestUser(c)

	fh, err := c.FormFile("image")
	if err != nil {
		return herror.BadRequest("No file uploaded")
	}
	src, err := fh.Open()
	if err != nil {
		return herror.InternalServerError(err)
	}
	defer src.Close()

	b, err := h.Imaging.Normalize(c.Request().Context(), src)
	if err != nil {
		switch err {
		case imaging.ErrInvalidImageSrc:
			return herror.BadRequest("Invalid image file")
		case imaging.ErrPixelLimitExceeded:
			return herror.BadRequest("Image is too large")
		default:
			return herror.InternalServerError(err)
		}
	}

	key := fmt.Sprintf("sociogram_%s_%d.png", user.Username, time.Now().UnixMilli())
	if err := h.Storage.Save(c.Request().Context(), key, b, consts.MimeImagePNG); err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Image uploaded successfully",
		"imageUrl": "/api/files/" + key,
	})
}

// GetFile GET /files/:key
func (h *Handlers) GetFile(c echo.Context) error {
	key := c.Param(consts.ParamKey)

	obj, err := h.Storage.Open(c.Request().Context(), key)
	if err != nil {
		if err == storage.ErrFileNotFound {
			return herror.NotFound("File not found")
		}
		return herror.InternalServerError(err)
	}
	defer obj.Close()

	contentType := obj.ContentType
	if len(contentType) == 0 {
		contentType = consts.MimeImagePNG
	}
	c.Response().Header().Set(consts.HeaderCacheControl, "public, max-age=31536000") // 1年間キャッシュ
	c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	return c.Stream(http.StatusOK, contentType, obj)
}
