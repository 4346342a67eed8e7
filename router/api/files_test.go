package api

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, img))
	return b.Bytes()
}

func TestHandlers_UploadImage(t *testing.T) {
	t.Parallel()

	path := "/api/upload"
	repo, server := Setup(t, common)
	user := CreateUser(t, repo, rand)

	t.Run("no file", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.POST(path).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			WithMultipart().
			WithFormField("dummy", "a").
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("invalid image", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.POST(path).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			WithMultipart().
			WithFileBytes("image", "test.png", []byte("not an image")).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		url := e.POST(path).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			WithMultipart().
			WithFileBytes("image", "test.png", testPNG(t, 1200, 600)).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("imageUrl").String().HasPrefix("/api/files/sociogram_" + user.Username + "_").Raw()

		body := e.GET(url).
			Expect().
			Status(http.StatusOK).
			ContentType("image/png").
			Body().Raw()

		cfg, err := png.DecodeConfig(bytes.NewBufferString(body))
		require.NoError(t, err)
		require.Equal(t, 1080, cfg.Width)
		require.Equal(t, 540, cfg.Height)
	})
}

func TestHandlers_GetFile(t *testing.T) {
	t.Parallel()

	_, server := Setup(t, common)
	e := R(t, server)
	e.GET("/api/files/{key}", "unknown.png").
		Expect().
		Status(http.StatusNotFound)
}
