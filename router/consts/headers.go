package consts

const (
	HeaderVersion      = "X-SOCIOGRAM-VERSION"
	HeaderCacheControl = "Cache-Control"
)
