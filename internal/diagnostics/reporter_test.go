package diagnostics

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewright/sitewright/internal/domain"
	"github.com/sitewright/sitewright/internal/utils"
)

type logEvent struct {
	Level     string `json:"level"`
	Message   string `json:"message"`
	Plugin    string `json:"plugin"`
	NodeID    string `json:"node_id"`
	PagePath  string `json:"page_path"`
	MatchKind string `json:"match_kind"`
}

func newCapturedReporter(t *testing.T) (*Reporter, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := utils.NewLogger(utils.LoggerOptions{
		Level:  "debug",
		Format: "json",
		Output: &buf,
	})
	return NewReporter(logger), &buf
}

func parseEvents(t *testing.T, buf *bytes.Buffer) []logEvent {
	t.Helper()
	var events []logEvent
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var ev logEvent
		require.NoError(t, json.Unmarshal([]byte(line), &ev))
		events = append(events, ev)
	}
	return events
}

func pendingFixture() domain.PendingManifest {
	return domain.PendingManifest{
		PluginName: "preview-plugin",
		ManifestID: "m-1",
		NodeID:     "1",
	}
}

func TestEvaluate_OwnerNodeIDIsSilent(t *testing.T) {
	reporter, buf := newCapturedReporter(t)

	logID, err := reporter.Evaluate(pendingFixture(), "/posts/one", domain.MatchOwnerNodeID)

	require.NoError(t, err)
	assert.Equal(t, LogPageResolved, logID)
	assert.Empty(t, buf.String())
}

func TestEvaluate_ContextIDEmitsError(t *testing.T) {
	reporter, buf := newCapturedReporter(t)

	logID, err := reporter.Evaluate(pendingFixture(), "/posts/one", domain.MatchContextID)

	require.NoError(t, err)
	assert.Equal(t, LogDeprecatedMapping, logID)

	events := parseEvents(t, buf)
	require.Len(t, events, 1)
	assert.Equal(t, "error", events[0].Level)
	assert.Equal(t, "preview-plugin", events[0].Plugin)
	assert.Equal(t, "/posts/one", events[0].PagePath)
	assert.Equal(t, "context-id", events[0].MatchKind)
}

func TestEvaluate_QueryTrackingEmitsError(t *testing.T) {
	reporter, buf := newCapturedReporter(t)

	logID, err := reporter.Evaluate(pendingFixture(), "/posts/one", domain.MatchQueryTracking)

	require.NoError(t, err)
	assert.Equal(t, LogDeprecatedMapping, logID)

	events := parseEvents(t, buf)
	require.Len(t, events, 1)
	assert.Equal(t, "error", events[0].Level)
	assert.Equal(t, "query-tracking", events[0].MatchKind)
}

func TestEvaluate_NoneEmitsError(t *testing.T) {
	reporter, buf := newCapturedReporter(t)

	logID, err := reporter.Evaluate(pendingFixture(), "", domain.MatchNone)

	require.NoError(t, err)
	assert.Equal(t, LogNoPageFound, logID)

	events := parseEvents(t, buf)
	require.Len(t, events, 1)
	assert.Equal(t, "error", events[0].Level)
	assert.Equal(t, "1", events[0].NodeID)
	assert.Contains(t, events[0].Message, "no page could be found")
}

func TestEvaluate_InvalidKindIsFatal(t *testing.T) {
	reporter, buf := newCapturedReporter(t)

	logID, err := reporter.Evaluate(pendingFixture(), "/posts/one", domain.MatchKind("bogus"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidMatchKind)
	assert.Empty(t, logID)
	// A contract violation must never degrade into a log line.
	assert.Empty(t, buf.String())
}

func TestNodeNotFound_WarnsWithExactMessage(t *testing.T) {
	reporter, buf := newCapturedReporter(t)

	reporter.NodeNotFound(pendingFixture())

	events := parseEvents(t, buf)
	require.Len(t, events, 1)
	assert.Equal(t, "warn", events[0].Level)
	assert.Equal(t,
		"Plugin preview-plugin called the manifest API for a node which doesn't exist with an id of 1.",
		events[0].Message)
}

func TestSummary_MessageFormats(t *testing.T) {
	tests := []struct {
		name       string
		written    int
		unresolved int
		want       string
	}{
		{
			name:    "all written",
			written: 3,
			want:    "Wrote out 3 node page manifest files.",
		},
		{
			name:       "some unresolved",
			written:    3,
			unresolved: 1,
			want:       "Wrote out 3 node page manifest files. 1 manifest couldn't be processed.",
		},
		{
			name:       "none written",
			written:    0,
			unresolved: 2,
			want:       "Wrote out 0 node page manifest files. 2 manifest couldn't be processed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter, buf := newCapturedReporter(t)

			reporter.Summary(tt.written, tt.unresolved)

			events := parseEvents(t, buf)
			require.Len(t, events, 1)
			assert.Equal(t, "info", events[0].Level)
			assert.Equal(t, tt.want, events[0].Message)
		})
	}
}

func TestWriteFailure_EmitsError(t *testing.T) {
	reporter, buf := newCapturedReporter(t)

	reporter.WriteFailure(pendingFixture(), "/tmp/out.json", assert.AnError)

	events := parseEvents(t, buf)
	require.Len(t, events, 1)
	assert.Equal(t, "error", events[0].Level)
	assert.Contains(t, events[0].Message, "Failed to write node manifest")
}
