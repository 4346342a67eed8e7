package consts

const (
	KeyUserID    = "userID"
	KeyUser      = "user"
	KeyRequestID = "requestID"
)
