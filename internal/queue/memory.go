package queue

import (
	"sort"
	"sync"

	"github.com/sitewright/sitewright/internal/domain"
)

// Memory is an in-process Queue for plugins running inside the build.
// Entries are keyed by (plugin, manifest id), so re-enqueueing replaces
// the earlier request for the same manifest.
type Memory struct {
	mu     sync.Mutex
	items  map[string]domain.PendingManifest
	closed bool
}

// NewMemory creates an empty in-memory queue
func NewMemory() *Memory {
	return &Memory{
		items: make(map[string]domain.PendingManifest),
	}
}

// Enqueue adds a pending manifest
func (q *Memory) Enqueue(m domain.PendingManifest) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return domain.ErrQueueClosed
	}

	q.items[Key(m.PluginName, m.ManifestID)] = m
	return nil
}

// SnapshotPending returns the pending entries ordered by key
func (q *Memory) SnapshotPending() ([]domain.PendingManifest, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil, domain.ErrQueueClosed
	}

	keys := make([]string, 0, len(q.items))
	for key := range q.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pending := make([]domain.PendingManifest, 0, len(keys))
	for _, key := range keys {
		pending = append(pending, q.items[key])
	}
	return pending, nil
}

// ClearProcessed removes exactly the given entries. Entries enqueued after
// the snapshot was taken stay pending.
func (q *Memory) ClearProcessed(batch []domain.PendingManifest) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return domain.ErrQueueClosed
	}

	for _, m := range batch {
		delete(q.items, Key(m.PluginName, m.ManifestID))
	}
	return nil
}

// Len returns the number of pending entries
func (q *Memory) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close marks the queue closed; further operations fail
func (q *Memory) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	return nil
}
