package counter

import (
	"sync"
	"time"

	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/traPtitech/sociogram/event"
)

var onlineUsersCounter = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "sociogram",
	Name:      "online_users",
})

// OnlineCounter オンラインユーザーカウンター
//
// ユーザーごとにWebSocketコネクション数を数え、0と1の境界でUserOnline/UserOfflineイベントを発行します。
type OnlineCounter struct {
	hub          *hub.Hub
	counters     map[string]*counter
	countersLock sync.Mutex
}

// NewOnlineCounter オンラインユーザーカウンターを生成します
func NewOnlineCounter(hub *hub.Hub) *OnlineCounter {
	oc := &OnlineCounter{
		hub:      hub,
		counters: map[string]*counter{},
	}
	go func() {
		for e := range hub.Subscribe(8, event.WSConnected, event.WSDisconnected).Receiver {
			switch e.Topic() {
			case event.WSConnected:
				oc.inc(e.Fields["user_id"].(string))
			case event.WSDisconnected:
				oc.dec(e.Fields["user_id"].(string))
			}
		}
	}()
	return oc
}

// inc 指定したユーザーのカウンタをインクリメントします
func (oc *OnlineCounter) inc(userID string) (toOnline bool) {
	oc.countersLock.Lock()
	c, ok := oc.counters[userID]
	if !ok {
		c = &counter{}
		oc.counters[userID] = c
	}
	oc.countersLock.Unlock()

	toOnline = c.inc()
	if toOnline {
		onlineUsersCounter.Inc()
		oc.hub.Publish(hub.Message{
			Name: event.UserOnline,
			Fields: hub.Fields{
				"user_id":  userID,
				"datetime": c.getLastUpdated(),
			},
		})
	}
	return
}

// dec 指定したユーザーのカウンタをデクリメントします
func (oc *OnlineCounter) dec(userID string) (toOffline bool) {
	oc.countersLock.Lock()
	c, ok := oc.counters[userID]
	oc.countersLock.Unlock()
	if !ok {
		return
	}

	toOffline = c.dec()
	if toOffline {
		onlineUsersCounter.Dec()
		oc.hub.Publish(hub.Message{
			Name: event.UserOffline,
			Fields: hub.Fields{
				"user_id":  userID,
				"datetime": c.getLastUpdated(),
			},
		})
	}
	return
}

// IsOnline 指定したユーザーが1つ以上のコネクションを持っているかどうかを取得します
func (oc *OnlineCounter) IsOnline(userID string) bool {
	oc.countersLock.Lock()
	c, ok := oc.counters[userID]
	oc.countersLock.Unlock()
	if !ok {
		return false
	}
	return c.isOnline()
}

type counter struct {
	sync.RWMutex
	count       int
	lastUpdated time.Time
}

func (s *counter) isOnline() (r bool) {
	s.RLock()
	r = s.count > 0
	s.RUnlock()
	return
}

func (s *counter) inc() (toOnline bool) {
	s.Lock()
	s.count++
	s.lastUpdated = time.Now()
	toOnline = s.count == 1
	s.Unlock()
	return
}

func (s *counter) dec() (toOffline bool) {
	s.Lock()
	if s.count > 0 {
		s.count--
		s.lastUpdated = time.Now()
		toOffline = s.count == 0
	}
	s.Unlock()
	return
}

func (s *counter) getLastUpdated() (t time.Time) {
	s.RLock()
	t = s.lastUpdated
	s.RUnlock()
	return
}
