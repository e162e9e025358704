package registry

import (
	"sort"
	"sync"

	"github.com/sitewright/sitewright/internal/domain"
)

// InMemory is the reference Registry implementation. The data layer owns
// all mutation: nodes and pages change between batches, never during one.
// The query-tracking index is appended to only by the query execution
// subsystem as it observes data access.
type InMemory struct {
	mu       sync.RWMutex
	nodes    map[domain.NodeID]domain.Node
	pages    map[string]domain.Page
	tracking map[domain.NodeID]map[string]struct{}
}

// NewInMemory creates an empty registry
func NewInMemory() *InMemory {
	return &InMemory{
		nodes:    make(map[domain.NodeID]domain.Node),
		pages:    make(map[string]domain.Page),
		tracking: make(map[domain.NodeID]map[string]struct{}),
	}
}

// AddNode adds or replaces a node
func (r *InMemory) AddNode(node domain.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes[node.ID] = node
}

// RemoveNode removes a node by id
func (r *InMemory) RemoveNode(id domain.NodeID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.nodes, id)
}

// AddPage adds or replaces a page, keyed by its path
func (r *InMemory) AddPage(page domain.Page) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages[page.Path] = page
}

// RemovePage removes a page by path
func (r *InMemory) RemovePage(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pages, path)
}

// TrackQuery records that the page at pagePath read the given node during
// query execution
func (r *InMemory) TrackQuery(id domain.NodeID, pagePath string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	paths, ok := r.tracking[id]
	if !ok {
		paths = make(map[string]struct{})
		r.tracking[id] = paths
	}
	paths[pagePath] = struct{}{}
}

// GetNode looks up a node by id
func (r *InMemory) GetNode(id domain.NodeID) (domain.Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	node, ok := r.nodes[id]
	return node, ok
}

// Pages returns all pages in ascending path order
func (r *InMemory) Pages() []domain.Page {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pages := make([]domain.Page, 0, len(r.pages))
	for _, page := range r.pages {
		pages = append(pages, page)
	}
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Path < pages[j].Path
	})
	return pages
}

// QueryTracking returns the tracked page paths for a node in ascending order
func (r *InMemory) QueryTracking(id domain.NodeID) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.tracking[id]
	if !ok {
		return nil
	}

	paths := make([]string, 0, len(set))
	for path := range set {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// NodeCount returns the number of nodes in the registry
func (r *InMemory) NodeCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}

// PageCount returns the number of pages in the registry
func (r *InMemory) PageCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pages)
}
