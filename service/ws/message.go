package ws

// frame クライアントに送るイベントフレーム
type frame struct {
	Type string      `json:"type"`
	Body interface{} `json:"body"`
}

func encodeFrame(eventName string, body interface{}) ([]byte, error) {
	return json.Marshal(&frame{Type: eventName, Body: body})
}

// セッション自身が送るイベント
const (
	// WelcomeEvent 接続直後に送られます
	WelcomeEvent = "welcome"
	// PongEvent pingコマンドへの応答
	PongEvent = "PONG"
	// WhoAmIEvent whoamiコマンドへの応答 ゲストの場合bodyはnull
	WhoAmIEvent = "WHOAMI"
	// ErrorEvent コマンドが不正な場合に送られます
	ErrorEvent = "ERROR"

	welcomeMessage = "Welcome to Sociogram!"
)
