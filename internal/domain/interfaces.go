package domain

import "context"

// Registry is the read contract the pipeline holds against the content and
// page store. The store itself is owned by the data layer; nothing in this
// module mutates it through this interface, and a batch depends only on the
// state observed while it runs.
type Registry interface {
	// GetNode looks up a node by id
	GetNode(id NodeID) (Node, bool)
	// Pages returns all registered pages in ascending path order
	Pages() []Page
	// QueryTracking returns the paths of pages whose data query read the
	// node, in ascending order. The set may be incomplete while a build is
	// still in progress; only the query execution subsystem mutates it.
	QueryTracking(id NodeID) []string
}

// Queue holds pending manifest requests enqueued by plugins
type Queue interface {
	// Enqueue adds a pending manifest. Re-enqueueing the same
	// (plugin, manifest id) pair replaces the earlier entry.
	Enqueue(m PendingManifest) error
	// SnapshotPending returns the pending entries ordered by plugin name
	// then manifest id
	SnapshotPending() ([]PendingManifest, error)
	// ClearProcessed atomically removes exactly the given entries. Entries
	// enqueued after the snapshot was taken are untouched.
	ClearProcessed(batch []PendingManifest) error
	// Close releases queue resources
	Close() error
}

// ArtifactWriter persists manifest artifacts
type ArtifactWriter interface {
	// Path returns the deterministic output path for a manifest
	Path(pluginName, manifestID string) string
	// Write persists the artifact at the path derived from the plugin name
	// and manifest id
	Write(ctx context.Context, pluginName, manifestID string, artifact Artifact) error
}
