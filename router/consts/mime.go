package consts

const (
	MimeImagePNG = "image/png"
)
