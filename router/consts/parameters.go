package consts

const (
	ParamID     = "id"
	ParamUserID = "userId"
	ParamKey    = "key"
)
