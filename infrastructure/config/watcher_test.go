package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeSettings(t *testing.T, path, logLevel string, rpm, burst int) {
	t.Helper()
	data := []byte(
		"log_level: " + logLevel + "\n" +
			"rate_limit:\n" +
			"  requests_per_minute: " + strconv.Itoa(rpm) + "\n" +
			"  burst: " + strconv.Itoa(burst) + "\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestWatcherLoadsInitialSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeSettings(t, path, "info", 100, 10)

	w, err := NewWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer w.Stop()

	current := w.Current()
	assert.Equal(t, "info", current.LogLevel)
	assert.Equal(t, 100, current.RateLimit.RequestsPerMinute)
	assert.Equal(t, 10, current.RateLimit.Burst)
}

func TestWatcherNotifiesOnReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeSettings(t, path, "info", 100, 10)

	w, err := NewWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan *DynamicConfig, 1)
	w.OnChange(func(c *DynamicConfig) { changed <- c })
	w.Start()

	writeSettings(t, path, "debug", 200, 20)

	select {
	case next := <-changed:
		assert.Equal(t, "debug", next.LogLevel)
		assert.Equal(t, 200, next.RateLimit.RequestsPerMinute)
		assert.Equal(t, 20, next.RateLimit.Burst)
	case <-time.After(3 * time.Second):
		t.Fatal("settings change was not observed")
	}

	assert.Equal(t, "debug", w.Current().LogLevel)
}

func TestWatcherKeepsSettingsOnBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeSettings(t, path, "info", 100, 10)

	w, err := NewWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer w.Stop()
	w.Start()

	require.NoError(t, os.WriteFile(path, []byte("rate_limit: {requests_per_minute: -1}\n"), 0o644))
	time.Sleep(500 * time.Millisecond)

	current := w.Current()
	assert.Equal(t, 100, current.RateLimit.RequestsPerMinute, "broken file must not replace settings")
}

func TestLoadDynamicConfigRejectsNonPositiveLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rate_limit:\n  requests_per_minute: 0\n  burst: 5\n"), 0o644))

	_, err := loadDynamicConfig(path)
	require.Error(t, err)
}
