package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sitewright/sitewright/internal/domain"
)

// Snapshot is an exported site graph: the nodes, pages and query-tracking
// edges a build produced, plus any manifest requests plugins enqueued
// during that build. It lets a batch run outside the build process that
// created the data.
type Snapshot struct {
	Nodes    []domain.Node            `yaml:"nodes" json:"nodes"`
	Pages    []domain.Page            `yaml:"pages" json:"pages"`
	Tracking map[string][]string      `yaml:"tracking,omitempty" json:"tracking,omitempty"`
	Pending  []domain.PendingManifest `yaml:"pending,omitempty" json:"pending,omitempty"`
}

// Validate validates the snapshot contents
func (s *Snapshot) Validate() error {
	for i, node := range s.Nodes {
		if node.ID == "" {
			return fmt.Errorf("node %d: %w", i, ErrEmptyNodeID)
		}
	}
	for i, page := range s.Pages {
		if page.Path == "" {
			return fmt.Errorf("page %d: %w", i, ErrEmptyPagePath)
		}
	}
	return nil
}

// Apply loads the snapshot contents into a registry
func (s *Snapshot) Apply(reg *InMemory) {
	for _, node := range s.Nodes {
		reg.AddNode(node)
	}
	for _, page := range s.Pages {
		reg.AddPage(page)
	}
	for nodeID, paths := range s.Tracking {
		for _, path := range paths {
			reg.TrackQuery(domain.NodeID(nodeID), path)
		}
	}
}

// Loader loads and validates site graph snapshot files
type Loader struct{}

// NewLoader creates a new snapshot loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a snapshot file from the given path
func (l *Loader) Load(path string) (*Snapshot, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses a snapshot from raw bytes
func (l *Loader) LoadFromBytes(data []byte, ext string) (*Snapshot, error) {
	ext = strings.ToLower(ext)

	var snap Snapshot
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	if err := snap.Validate(); err != nil {
		return nil, err
	}

	return &snap, nil
}
