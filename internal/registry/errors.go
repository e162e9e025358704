package registry

import "errors"

// Sentinel errors for snapshot loading
var (
	// ErrSnapshotNotFound indicates the snapshot file does not exist
	ErrSnapshotNotFound = errors.New("snapshot file not found")

	// ErrInvalidFormat indicates the snapshot file is not valid YAML or JSON
	ErrInvalidFormat = errors.New("snapshot must be valid YAML or JSON")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .yaml, .yml, or .json)")

	// ErrEmptyNodeID indicates a node entry is missing its id
	ErrEmptyNodeID = errors.New("node id cannot be empty")

	// ErrEmptyPagePath indicates a page entry is missing its path
	ErrEmptyPagePath = errors.New("page path cannot be empty")
)
