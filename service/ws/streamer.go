package ws

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/traPtitech/sociogram/event"
	"github.com/traPtitech/sociogram/service/presence"
)

var (
	// ErrAlreadyClosed 既に閉じられています
	ErrAlreadyClosed = errors.New("already closed")
	// ErrBufferIsFull 送信バッファが溢れました
	ErrBufferIsFull = errors.New("buffer is full")
	// ErrSessionNotFound 指定したコネクションIDのセッションが存在しません
	ErrSessionNotFound = errors.New("session not found")
)

// Streamer WebSocketストリーマー
type Streamer struct {
	hub      *hub.Hub
	registry *presence.Registry
	logger   *zap.Logger
	sessions map[string]*session
	closed   bool
	mu       sync.RWMutex
}

// NewStreamer WebSocketストリーマーを生成します
func NewStreamer(hub *hub.Hub, registry *presence.Registry, logger *zap.Logger) *Streamer {
	return &Streamer{
		hub:      hub,
		registry: registry,
		logger:   logger.Named("ws"),
		sessions: make(map[string]*session),
		closed:   false,
	}
}

// register セッションを登録します
//
// Closeの後に呼ばれた場合は登録せずにErrAlreadyClosedを返します。
func (s *Streamer) register(session *session) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrAlreadyClosed
	}
	s.sessions[session.key] = session
	s.mu.Unlock()

	if !session.Guest() {
		s.registry.Register(session.userID, session.key)
	}
	return nil
}

func (s *Streamer) unregister(session *session) {
	if !session.Guest() {
		s.registry.Unregister(session.key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[session.key] == session {
		delete(s.sessions, session.key)
	}
}

// Send 指定したコネクションにイベントを送信します
//
// 送信キューに積んだ時点で返ります。
func (s *Streamer) Send(connectionID string, eventName string, payload interface{}) error {
	s.mu.RLock()
	session, ok := s.sessions[connectionID]
	s.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	data, err := encodeFrame(eventName, payload)
	if err != nil {
		return err
	}
	return session.enqueue(data)
}

// IterateSessions 全セッションをイテレートします
func (s *Streamer) IterateSessions(f func(session Session)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, session := range s.sessions {
		f(session)
	}
}

// ServeHTTP http.Handlerインターフェイスの実装
func (s *Streamer) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	if s.closed {
		http.Error(rw, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		s.mu.RUnlock()
		return
	}
	s.mu.RUnlock()

	conn, err := upgrader.Upgrade(rw, r, rw.Header())
	if err != nil {
		return
	}

	session := newSession(conn, r)
	// アップグレード中にCloseされた場合
	if err := s.register(session); err != nil {
		session.closeWith(websocket.CloseServiceRestart, "Server is stopping...")
		return
	}
	defer s.cleanup(session)

	s.logger.Debug("connected", zap.String("connId", session.key), zap.String("userId", session.userID))
	if !session.Guest() {
		s.hub.Publish(hub.Message{
			Name: event.WSConnected,
			Fields: hub.Fields{
				"user_id": session.userID,
				"conn_id": session.key,
				"req":     r,
			},
		})
	}
	session.sendEvent(WelcomeEvent, welcomeMessage)

	go session.writeLoop()
	session.readLoop()
}

func (s *Streamer) cleanup(session *session) {
	s.unregister(session)
	if !session.Guest() {
		s.hub.Publish(hub.Message{
			Name: event.WSDisconnected,
			Fields: hub.Fields{
				"user_id": session.userID,
				"conn_id": session.key,
				"req":     session.req,
			},
		})
	}
	session.close()
	s.logger.Debug("disconnected",
		zap.String("connId", session.key),
		zap.String("userId", session.userID),
		zap.Duration("duration", time.Since(session.connectedAt)),
		zap.Uint64("dropped", session.dropped.Load()),
	)
}

// Close ストリーマーを停止します
func (s *Streamer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrAlreadyClosed
	}
	s.closed = true

	for _, session := range s.sessions {
		session.closeWith(websocket.CloseServiceRestart, "Server is stopping...")
	}
	s.sessions = make(map[string]*session)
	return nil
}

// identify 接続要求からユーザーIDを取り出します
//
// 指定が無い場合や"undefined"の場合はゲストとして空文字列を返します。
func identify(r *http.Request) string {
	userID := r.URL.Query().Get(identityQueryKey)
	if userID == guestSentinel {
		return ""
	}
	return userID
}
