package domain

// NodeID identifies a content node. Two NodeIDs are the same node exactly
// when the underlying strings are equal; no normalization or coercion is
// applied anywhere in the pipeline.
type NodeID string

// String returns the id as a plain string
func (id NodeID) String() string {
	return string(id)
}

// Node is a unit of content owned by the data layer. The pipeline treats
// everything beyond the id as an opaque payload that is carried into the
// manifest artifact unchanged.
type Node struct {
	ID     NodeID         `yaml:"id" json:"id"`
	Fields map[string]any `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// Page is a rendered output identified by its unique path. It may declare
// the node it renders explicitly via OwnerNodeID, or imply it through the
// legacy Context["id"] convention.
type Page struct {
	Path        string            `yaml:"path" json:"path"`
	Component   string            `yaml:"component,omitempty" json:"component,omitempty"`
	Context     map[string]string `yaml:"context,omitempty" json:"context,omitempty"`
	OwnerNodeID NodeID            `yaml:"ownerNodeId,omitempty" json:"ownerNodeId,omitempty"`
}

// ContextNodeID returns the node id implied by the page context, if any
func (p Page) ContextNodeID() (NodeID, bool) {
	id, ok := p.Context["id"]
	if !ok || id == "" {
		return "", false
	}
	return NodeID(id), true
}

// MatchKind names the signal a resolution was based on
type MatchKind string

// Recognized match kinds, from lowest to highest confidence
const (
	MatchNone          MatchKind = "none"
	MatchContextID     MatchKind = "context-id"
	MatchQueryTracking MatchKind = "query-tracking"
	MatchOwnerNodeID   MatchKind = "owner-node-id"
)

// Valid reports whether k is one of the recognized match kinds
func (k MatchKind) Valid() bool {
	switch k {
	case MatchNone, MatchContextID, MatchQueryTracking, MatchOwnerNodeID:
		return true
	}
	return false
}

// Resolution is the outcome of mapping a node to the page that renders it.
// Page is nil exactly when Kind is MatchNone.
type Resolution struct {
	Page *Page
	Kind MatchKind
}

// Resolved reports whether a page was found
func (r Resolution) Resolved() bool {
	return r.Kind != MatchNone && r.Page != nil
}

// PendingManifest is a plugin-enqueued request to materialize a node→page
// mapping artifact. ManifestID is unique within the plugin's namespace.
type PendingManifest struct {
	PluginName string `yaml:"plugin" json:"pluginName"`
	ManifestID string `yaml:"manifestId" json:"manifestId"`
	NodeID     NodeID `yaml:"nodeId" json:"nodeId"`
}

// Artifact is the persisted record of a resolved node/page pairing
type Artifact struct {
	Node Node `json:"node"`
	Page Page `json:"page"`
}
