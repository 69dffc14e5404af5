package providers

import "sync"

// SnapshotCache 最后值缓存，由展示层持有，按地点名或"market"等键索引。
// 条目只做整体替换，读者不会看到半更新的快照；
// 刷新或切换地点时由调用方显式失效
type SnapshotCache[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
}

// NewSnapshotCache 创建一个空缓存
func NewSnapshotCache[T any]() *SnapshotCache[T] {
	return &SnapshotCache[T]{entries: make(map[string]T)}
}

// Get 取某个键的快照
func (c *SnapshotCache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot, ok := c.entries[key]
	return snapshot, ok
}

// Put 整体替换某个键的快照
func (c *SnapshotCache[T]) Put(key string, snapshot T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = snapshot
}

// Invalidate 使某个键失效，下次读取触发重新抓取
func (c *SnapshotCache[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
