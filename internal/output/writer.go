package output

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sitewright/sitewright/internal/domain"
	"github.com/sitewright/sitewright/internal/utils"
)

// manifestDirName is the directory under the cache root that holds all
// node manifest artifacts
const manifestDirName = "node-manifests"

// Writer persists manifest artifacts under
// <cache-root>/node-manifests/<plugin>/<manifestID>.json
type Writer struct {
	cacheRoot string
}

// WriterOptions contains options for the artifact writer
type WriterOptions struct {
	CacheRoot string
}

// NewWriter creates a new artifact writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.CacheRoot == "" {
		opts.CacheRoot = ".cache"
	}

	return &Writer{cacheRoot: opts.CacheRoot}
}

// Path returns the output path for a manifest. The path depends only on
// the plugin name and manifest id, so concurrent writes within a batch
// never collide and rewrites land on the same file.
func (w *Writer) Path(pluginName, manifestID string) string {
	return filepath.Join(
		w.cacheRoot,
		manifestDirName,
		utils.SanitizeFilename(pluginName),
		utils.SanitizeFilename(manifestID)+".json",
	)
}

// Write persists the artifact. Identical artifacts produce byte-identical
// files.
func (w *Writer) Write(ctx context.Context, pluginName, manifestID string, artifact domain.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := w.Path(pluginName, manifestID)
	if err := utils.WriteJSONFile(path, artifact); err != nil {
		return domain.NewWriteError(pluginName, manifestID, path, err)
	}
	return nil
}

// ReadArtifact reads a previously written artifact back, mainly for
// inspection tooling
func (w *Writer) ReadArtifact(pluginName, manifestID string) (domain.Artifact, error) {
	path := w.Path(pluginName, manifestID)

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Artifact{}, err
	}

	var artifact domain.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return domain.Artifact{}, fmt.Errorf("corrupt artifact at %s: %w", path, err)
	}
	return artifact, nil
}
