package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultCacheRoot, cfg.Cache.Root)
	assert.Equal(t, DefaultWorkers, cfg.Concurrency.Workers)
	assert.Equal(t, ModeBuild, cfg.Build.Mode)
	assert.Equal(t, DefaultInterval, cfg.Build.Interval)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Queue.Directory)
}

func TestValidate_ClampsInvalidValues(t *testing.T) {
	cfg := &Config{}
	cfg.Concurrency.Workers = -1
	cfg.Build.Interval = 10 * time.Millisecond

	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultWorkers, cfg.Concurrency.Workers)
	assert.Equal(t, DefaultInterval, cfg.Build.Interval)
	assert.Equal(t, DefaultCacheRoot, cfg.Cache.Root)
}

func TestValidate_RejectsUnknownMode(t *testing.T) {
	cfg := &Config{}
	cfg.Build.Mode = "production"

	err := cfg.Validate()

	assert.Error(t, err)
}

func TestTrackingComplete(t *testing.T) {
	assert.True(t, BuildConfig{Mode: ModeBuild}.TrackingComplete())
	assert.False(t, BuildConfig{Mode: ModeDevelop}.TrackingComplete())
}
