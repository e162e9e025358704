package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewright/sitewright/internal/domain"
)

func newTestBadgerQueue(t *testing.T) *BadgerQueue {
	t.Helper()
	q, err := NewBadgerQueue(BadgerOptions{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = q.Close() })
	return q
}

func TestBadgerQueue_EnqueueSnapshotClear(t *testing.T) {
	q := newTestBadgerQueue(t)

	for _, m := range []domain.PendingManifest{
		{PluginName: "beta", ManifestID: "1", NodeID: "n1"},
		{PluginName: "alpha", ManifestID: "1", NodeID: "n2"},
	} {
		require.NoError(t, q.Enqueue(m))
	}

	pending, err := q.SnapshotPending()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	// Badger iterates in key order: plugin name then manifest id.
	assert.Equal(t, "alpha", pending[0].PluginName)
	assert.Equal(t, "beta", pending[1].PluginName)

	require.NoError(t, q.ClearProcessed(pending))

	pending, err = q.SnapshotPending()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestBadgerQueue_ReEnqueueReplaces(t *testing.T) {
	q := newTestBadgerQueue(t)

	require.NoError(t, q.Enqueue(domain.PendingManifest{PluginName: "p", ManifestID: "m", NodeID: "old"}))
	require.NoError(t, q.Enqueue(domain.PendingManifest{PluginName: "p", ManifestID: "m", NodeID: "new"}))

	pending, err := q.SnapshotPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, domain.NodeID("new"), pending[0].NodeID)
}

func TestBadgerQueue_ClearLeavesEntriesEnqueuedMidBatch(t *testing.T) {
	q := newTestBadgerQueue(t)
	require.NoError(t, q.Enqueue(domain.PendingManifest{PluginName: "p", ManifestID: "a", NodeID: "1"}))

	batch, err := q.SnapshotPending()
	require.NoError(t, err)

	require.NoError(t, q.Enqueue(domain.PendingManifest{PluginName: "p", ManifestID: "b", NodeID: "2"}))
	require.NoError(t, q.ClearProcessed(batch))

	remaining, err := q.SnapshotPending()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "b", remaining[0].ManifestID)
}

func TestBadgerQueue_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	q, err := NewBadgerQueue(BadgerOptions{Directory: dir})
	require.NoError(t, err)
	require.NoError(t, q.Enqueue(domain.PendingManifest{PluginName: "p", ManifestID: "m", NodeID: "1"}))
	require.NoError(t, q.Close())

	reopened, err := NewBadgerQueue(BadgerOptions{Directory: dir})
	require.NoError(t, err)
	defer reopened.Close()

	pending, err := reopened.SnapshotPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "m", pending[0].ManifestID)
}

func TestBadgerQueue_ClearEmptyBatchIsNoOp(t *testing.T) {
	q := newTestBadgerQueue(t)
	assert.NoError(t, q.ClearProcessed(nil))
}
