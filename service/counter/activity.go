package counter

import (
	"sync"

	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/traPtitech/sociogram/event"
)

var activitiesCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sociogram",
	Name:      "activities_count_total",
}, []string{"kind"})

// ActivityKind 数えるアクティビティの種類
type ActivityKind string

const (
	ActivityUserCreated          ActivityKind = "user_created"
	ActivityPostCreated          ActivityKind = "post_created"
	ActivityPostDeleted          ActivityKind = "post_deleted"
	ActivityFriendshipCreated    ActivityKind = "friendship_created"
	ActivityDirectMessageCreated ActivityKind = "direct_message_created"
)

// ActivityKinds 数えている全てのアクティビティの種類
var ActivityKinds = []ActivityKind{
	ActivityUserCreated,
	ActivityPostCreated,
	ActivityPostDeleted,
	ActivityFriendshipCreated,
	ActivityDirectMessageCreated,
}

var topicToKind = map[string]ActivityKind{
	event.UserCreated:          ActivityUserCreated,
	event.PostCreated:          ActivityPostCreated,
	event.PostDeleted:          ActivityPostDeleted,
	event.FriendshipCreated:    ActivityFriendshipCreated,
	event.DirectMessageCreated: ActivityDirectMessageCreated,
}

// ActivityCounter 起動してからのアクティビティ数カウンタ
type ActivityCounter interface {
	// Get 指定した種類のアクティビティ数を返します
	Get(kind ActivityKind) int
}

type activityCounterImpl struct {
	counts map[ActivityKind]int
	sync.RWMutex
}

// NewActivityCounter アクティビティ数カウンタを生成します
func NewActivityCounter(hub *hub.Hub) ActivityCounter {
	counter := &activityCounterImpl{
		counts: make(map[ActivityKind]int, len(topicToKind)),
	}
	topics := make([]string, 0, len(topicToKind))
	for t := range topicToKind {
		topics = append(topics, t)
	}
	go func() {
		for e := range hub.Subscribe(8, topics...).Receiver {
			counter.inc(topicToKind[e.Topic()])
		}
	}()
	return counter
}

func (c *activityCounterImpl) Get(kind ActivityKind) int {
	c.RLock()
	defer c.RUnlock()
	return c.counts[kind]
}

func (c *activityCounterImpl) inc(kind ActivityKind) {
	c.Lock()
	c.counts[kind]++
	c.Unlock()
	activitiesCounter.WithLabelValues(string(kind)).Inc()
}
