package testutil

import (
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sitewright/sitewright/internal/utils"
)

// NewTestLogger creates a logger that discards output but carries the test
// name, so failures that do log are attributable
func NewTestLogger(t *testing.T) *utils.Logger {
	t.Helper()

	zlogger := zerolog.New(io.Discard).With().
		Timestamp().
		Str("test", t.Name()).
		Logger()

	return &utils.Logger{Logger: zlogger}
}
