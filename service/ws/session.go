package ws

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/uuid"
	"github.com/gorilla/websocket"
)

// Session WebSocketセッション
type Session interface {
	// Key このセッションのコネクションID
	Key() string
	// UserID このセッションのUserID ゲストの場合は空文字列
	UserID() string
	// Guest このセッションがユーザーIDを名乗らずに接続したかどうか
	Guest() bool
	// ConnectedAt 接続した時刻
	ConnectedAt() time.Time
}

type session struct {
	key         string
	userID      string
	connectedAt time.Time
	req         *http.Request
	conn        *websocket.Conn

	// outboxは閉じない。終了はdoneで通知する
	outbox    chan []byte
	done      chan struct{}
	closeOnce sync.Once
	dropped   atomic.Uint64
}

func newSession(conn *websocket.Conn, r *http.Request) *session {
	return &session{
		key:         uuid.Must(uuid.NewV4()).String(),
		userID:      identify(r),
		connectedAt: time.Now(),
		req:         r,
		conn:        conn,
		outbox:      make(chan []byte, messageBufferSize),
		done:        make(chan struct{}),
	}
}

func (s *session) readLoop() {
	s.conn.SetReadLimit(maxReadMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		t, m, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		switch t {
		case websocket.TextMessage:
			s.commandHandler(string(m))
		case websocket.BinaryMessage:
			s.closeWith(websocket.CloseUnsupportedData, "binary message is not supported.")
			return
		}
	}
}

func (s *session) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case data := <-s.outbox:
			if err := s.write(websocket.TextMessage, data); err != nil {
				s.close()
				return
			}
		case <-ticker.C:
			if err := s.write(websocket.PingMessage, nil); err != nil {
				s.close()
				return
			}
		case <-s.done:
			return
		}
	}
}

// enqueue 送信キューにフレームを積みます
//
// 閉じたセッションにはErrAlreadyClosedを、キューが一杯の場合はフレームを破棄してErrBufferIsFullを返します。
func (s *session) enqueue(data []byte) error {
	select {
	case <-s.done:
		return ErrAlreadyClosed
	default:
	}

	select {
	case s.outbox <- data:
		return nil
	default:
		s.dropped.Add(1)
		return ErrBufferIsFull
	}
}

func (s *session) write(messageType int, data []byte) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(messageType, data)
}

// closeWith クローズフレームを送ってからセッションを閉じます
func (s *session) closeWith(code int, text string) {
	_ = s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), time.Now().Add(writeWait))
	s.close()
}

func (s *session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

// Key implements Session interface.
func (s *session) Key() string {
	return s.key
}

// UserID implements Session interface.
func (s *session) UserID() string {
	return s.userID
}

// Guest implements Session interface.
func (s *session) Guest() bool {
	return len(s.userID) == 0
}

// ConnectedAt implements Session interface.
func (s *session) ConnectedAt() time.Time {
	return s.connectedAt
}
