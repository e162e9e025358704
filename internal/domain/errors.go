package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrNodeNotFound indicates the referenced node is absent from the registry
	ErrNodeNotFound = errors.New("node not found")

	// ErrNoPageFound indicates no page could be mapped to a node
	ErrNoPageFound = errors.New("no page found for node")

	// ErrInvalidMatchKind indicates diagnostics was invoked with an
	// unrecognized match kind. This is a programming defect in the
	// resolver/diagnostics contract, never a data problem, and must halt
	// the batch instead of being swallowed.
	ErrInvalidMatchKind = errors.New("invalid match kind")

	// ErrWriteFailed indicates writing a manifest artifact failed
	ErrWriteFailed = errors.New("artifact write failed")

	// ErrQueueClosed indicates an operation on a closed manifest queue
	ErrQueueClosed = errors.New("manifest queue is closed")
)

// WriteError records a failed artifact write for one manifest
type WriteError struct {
	PluginName string
	ManifestID string
	Path       string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%v: plugin %s manifest %s at %s: %v",
		ErrWriteFailed, e.PluginName, e.ManifestID, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match WriteError against ErrWriteFailed
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailed
}

// NewWriteError creates a new WriteError
func NewWriteError(pluginName, manifestID, path string, err error) *WriteError {
	return &WriteError{
		PluginName: pluginName,
		ManifestID: manifestID,
		Path:       path,
		Err:        err,
	}
}
