// Package diagnostics maps resolution outcomes to severity-tagged log
// events. Only the four recognized match kinds are diagnosable; anything
// else is a broken resolver contract and is surfaced as a fatal error
// instead of a log line.
package diagnostics

import (
	"fmt"

	"github.com/sitewright/sitewright/internal/domain"
	"github.com/sitewright/sitewright/internal/utils"
)

// LogID identifies the diagnostic path an outcome took
type LogID string

const (
	// LogPageResolved is the silent success path for owner-node-id matches
	LogPageResolved LogID = "page-resolved"

	// LogDeprecatedMapping marks a resolution that worked but rests on a
	// deprecated or low-confidence signal
	LogDeprecatedMapping LogID = "deprecated-page-mapping"

	// LogNoPageFound marks a node no page could be found for
	LogNoPageFound LogID = "no-page-found"
)

// Reporter emits diagnostics for resolution outcomes
type Reporter struct {
	log *utils.Logger
}

// NewReporter creates a reporter that writes to the given logger
func NewReporter(logger *utils.Logger) *Reporter {
	return &Reporter{log: logger.WithComponent("diagnostics")}
}

// Evaluate maps a resolution outcome to its diagnostic. Owner-node-id
// matches succeed silently. Context-id and query-tracking matches emit an
// error-severity event warning the plugin author, but the page is still
// used. A none outcome emits an error event and the caller must not write
// an artifact. An unrecognized kind returns ErrInvalidMatchKind, which the
// caller must treat as fatal.
func (r *Reporter) Evaluate(m domain.PendingManifest, pagePath string, kind domain.MatchKind) (LogID, error) {
	switch kind {
	case domain.MatchOwnerNodeID:
		return LogPageResolved, nil

	case domain.MatchContextID, domain.MatchQueryTracking:
		r.log.Error().
			Str("plugin", m.PluginName).
			Str("manifest_id", m.ManifestID).
			Str("node_id", m.NodeID.String()).
			Str("page_path", pagePath).
			Str("match_kind", string(kind)).
			Msgf("Plugin %s resolved the page for node %s by %s. This mapping is deprecated or low-confidence; create the page with ownerNodeId instead.",
				m.PluginName, m.NodeID, kind)
		return LogDeprecatedMapping, nil

	case domain.MatchNone:
		r.log.Error().
			Str("plugin", m.PluginName).
			Str("manifest_id", m.ManifestID).
			Str("node_id", m.NodeID.String()).
			Str("match_kind", string(kind)).
			Msgf("Plugin %s requested a manifest for node %s but no page could be found that renders it.",
				m.PluginName, m.NodeID)
		return LogNoPageFound, nil
	}

	return "", fmt.Errorf("%w: %q", domain.ErrInvalidMatchKind, kind)
}

// NodeNotFound emits the warning for a manifest whose node is absent from
// the registry entirely. This is checked before resolution runs.
func (r *Reporter) NodeNotFound(m domain.PendingManifest) {
	r.log.Warn().
		Str("plugin", m.PluginName).
		Str("manifest_id", m.ManifestID).
		Msgf("Plugin %s called the manifest API for a node which doesn't exist with an id of %s.",
			m.PluginName, m.NodeID)
}

// WriteFailure reports a failed artifact write for one manifest. The batch
// continues; the manifest counts as unresolved for this pass.
func (r *Reporter) WriteFailure(m domain.PendingManifest, path string, err error) {
	r.log.Error().
		Err(err).
		Str("plugin", m.PluginName).
		Str("manifest_id", m.ManifestID).
		Str("path", path).
		Msgf("Failed to write node manifest for plugin %s with an id of %s.",
			m.PluginName, m.ManifestID)
}

// Summary emits the one info event that closes a non-empty batch
func (r *Reporter) Summary(written, unresolved int) {
	msg := fmt.Sprintf("Wrote out %d node page manifest files.", written)
	if unresolved > 0 {
		msg += fmt.Sprintf(" %d manifest couldn't be processed.", unresolved)
	}
	r.log.Info().
		Int("written", written).
		Int("unresolved", unresolved).
		Msg(msg)
}
