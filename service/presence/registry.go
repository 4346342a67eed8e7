package presence

import (
	"sync"
)

// Registry オンラインユーザーとWebSocketコネクションの対応表
//
// 1ユーザーにつき保持するコネクションは最大1つで、後から接続したコネクションが優先されます。
type Registry struct {
	byUser map[string]string
	byConn map[string]string
	mu     sync.RWMutex
}

// NewRegistry 空のRegistryを生成します
func NewRegistry() *Registry {
	return &Registry{
		byUser: make(map[string]string),
		byConn: make(map[string]string),
	}
}

// Register ユーザーとコネクションを対応付けます
//
// 既に別のコネクションが対応付けられている場合は上書きします。
// 古いコネクション自体は閉じられません。
func (r *Registry) Register(userID, connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.byUser[userID]; ok {
		delete(r.byConn, prev)
	}
	if prevUser, ok := r.byConn[connectionID]; ok && prevUser != userID {
		delete(r.byUser, prevUser)
	}
	r.byUser[userID] = connectionID
	r.byConn[connectionID] = userID
}

// Unregister 指定したコネクションの対応付けを削除します
//
// 対応付けが存在しない場合(未登録・上書き済み)は何もしません。
// 削除した場合はそのユーザーIDとtrueを返します。
func (r *Registry) Unregister(connectionID string) (userID string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok = r.byConn[connectionID]
	if !ok {
		return "", false
	}
	delete(r.byConn, connectionID)
	if r.byUser[userID] == connectionID {
		delete(r.byUser, userID)
	}
	return userID, true
}

// Lookup 指定したユーザーの現在のコネクションIDを返します
//
// オンラインでない場合はokがfalseになります。
func (r *Registry) Lookup(userID string) (connectionID string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	connectionID, ok = r.byUser[userID]
	return
}

// Users 現在コネクションが対応付けられているユーザーIDの一覧を返します
func (r *Registry) Users() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]string, 0, len(r.byUser))
	for u := range r.byUser {
		users = append(users, u)
	}
	return users
}

// Len 対応付けられているユーザー数を返します
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser)
}
