package ws

import (
	"fmt"
	"strings"
)

// commandHandler クライアントから送られたテキストコマンドを処理します
func (s *session) commandHandler(cmd string) {
	name, _, _ := strings.Cut(strings.TrimSpace(cmd), ":")

	switch strings.ToLower(name) {
	case "ping":
		// ブラウザはpingフレームを送れないので、アプリケーションレベルで応答する
		s.sendEvent(PongEvent, nil)
	case "whoami":
		if s.Guest() {
			s.sendEvent(WhoAmIEvent, nil)
			return
		}
		s.sendEvent(WhoAmIEvent, s.userID)
	default:
		s.sendEvent(ErrorEvent, fmt.Sprintf("unknown command: %s", cmd))
	}
}

func (s *session) sendEvent(eventName string, body interface{}) {
	data, err := encodeFrame(eventName, body)
	if err != nil {
		return
	}
	_ = s.enqueue(data)
}
