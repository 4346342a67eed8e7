package notification

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/traPtitech/sociogram/service/presence"
)

type sent struct {
	connID  string
	event   string
	payload interface{}
}

type recordingSender struct {
	mu   sync.Mutex
	sent []sent
	err  error
}

func (s *recordingSender) Send(connectionID string, eventName string, payload interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sent{connectionID, eventName, payload})
	return nil
}

func setup(t *testing.T) (*presence.Registry, *recordingSender, *Router) {
	t.Helper()
	reg := presence.NewRegistry()
	sender := &recordingSender{}
	return reg, sender, NewRouter(reg, sender, zap.NewNop())
}

func TestRouter_Notify(t *testing.T) {
	t.Parallel()

	t.Run("offline target", func(t *testing.T) {
		t.Parallel()
		_, sender, r := setup(t)

		r.Notify("B", NewNotificationEvent, NewNotificationPayload{Message: "hi"})
		assert.Empty(t, sender.sent)
	})

	t.Run("empty target", func(t *testing.T) {
		t.Parallel()
		reg, sender, r := setup(t)
		reg.Register("", "sock")

		r.Notify("", NewNotificationEvent, nil)
		assert.Empty(t, sender.sent)
	})

	t.Run("online target", func(t *testing.T) {
		t.Parallel()
		reg, sender, r := setup(t)
		reg.Register("A", "sockA")
		reg.Register("B", "sockB")

		p := NewNotificationPayload{Message: "hi"}
		r.Notify("B", NewNotificationEvent, p)
		if assert.Len(t, sender.sent, 1) {
			assert.Equal(t, sent{"sockB", NewNotificationEvent, p}, sender.sent[0])
		}
	})

	t.Run("delivers to the latest connection", func(t *testing.T) {
		t.Parallel()
		reg, sender, r := setup(t)
		reg.Register("A", "sockA1")
		reg.Register("A", "sockA2")

		r.Notify("A", NewNotificationEvent, nil)
		if assert.Len(t, sender.sent, 1) {
			assert.Equal(t, "sockA2", sender.sent[0].connID)
		}
	})

	t.Run("after disconnect", func(t *testing.T) {
		t.Parallel()
		reg, sender, r := setup(t)
		reg.Register("A", "sockA")
		reg.Unregister("sockA")

		r.Notify("A", NewNotificationEvent, nil)
		assert.Empty(t, sender.sent)
	})

	t.Run("send failure is swallowed", func(t *testing.T) {
		t.Parallel()
		reg, sender, r := setup(t)
		reg.Register("A", "sockA")
		sender.err = errors.New("broken pipe")

		assert.NotPanics(t, func() {
			r.Notify("A", NewNotificationEvent, nil)
		})
	})

	t.Run("keeps call order", func(t *testing.T) {
		t.Parallel()
		reg, sender, r := setup(t)
		reg.Register("A", "sockA")

		r.Notify("A", NewNotificationEvent, 1)
		r.Notify("A", PostNotificationEvent, 2)
		r.Notify("A", NewNotificationEvent, 3)
		if assert.Len(t, sender.sent, 3) {
			assert.Equal(t, 1, sender.sent[0].payload)
			assert.Equal(t, PostNotificationEvent, sender.sent[1].event)
			assert.Equal(t, 3, sender.sent[2].payload)
		}
	})
}
