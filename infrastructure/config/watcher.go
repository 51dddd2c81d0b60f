package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Watcher watches a runtime settings file for changes
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	current  *DynamicConfig
	mu       sync.RWMutex
	onChange []func(*DynamicConfig)
	logger   *zap.Logger
	stopCh   chan struct{}
}

// DynamicConfig represents runtime-changeable settings
type DynamicConfig struct {
	LogLevel  string    `yaml:"log_level"`
	RateLimit RateLimit `yaml:"rate_limit"`
}

// RateLimit holds request rate limits
type RateLimit struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	Burst             int `yaml:"burst"`
}

// NewWatcher creates a watcher over the settings file at path.
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	current, err := loadDynamicConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial settings: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch settings file: %w", err)
	}

	// Watch the directory too, for editors that save via rename.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		logger.Warn("Failed to watch settings directory", zap.Error(err))
	}

	return &Watcher{
		path:    path,
		watcher: fw,
		current: current,
		logger:  logger,
		stopCh:  make(chan struct{}),
	}, nil
}

// Start begins watching for settings changes
func (w *Watcher) Start() {
	go w.watchLoop()
	w.logger.Info("Settings watcher started", zap.String("path", w.path))
}

// Stop stops watching for settings changes
func (w *Watcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
	w.logger.Info("Settings watcher stopped")
}

func (w *Watcher) watchLoop() {
	// Debounce so an editor's write burst triggers one reload
	var debounce *time.Timer
	const debounceDuration = 100 * time.Millisecond

	for {
		select {
		case <-w.stopCh:
			if debounce != nil {
				debounce.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDuration, w.reload)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))
		}
	}
}

// reload re-reads the settings file and notifies listeners on success.
// A broken file keeps the previous settings.
func (w *Watcher) reload() {
	w.logger.Info("Settings file changed, reloading", zap.String("path", w.path))

	next, err := loadDynamicConfig(w.path)
	if err != nil {
		w.logger.Error("Failed to reload settings, keeping current", zap.Error(err))
		return
	}

	w.mu.Lock()
	prev := w.current
	w.current = next
	handlers := w.onChange
	w.mu.Unlock()

	if prev.LogLevel != next.LogLevel {
		w.logger.Info("Log level changed",
			zap.String("from", prev.LogLevel),
			zap.String("to", next.LogLevel),
		)
	}

	for _, handler := range handlers {
		go handler(next)
	}
}

// OnChange registers a callback for settings changes
func (w *Watcher) OnChange(handler func(*DynamicConfig)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, handler)
}

// Current returns the current settings
func (w *Watcher) Current() *DynamicConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

func loadDynamicConfig(path string) (*DynamicConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	cfg := &DynamicConfig{
		LogLevel: "info",
		RateLimit: RateLimit{
			RequestsPerMinute: 300,
			Burst:             50,
		},
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if cfg.RateLimit.RequestsPerMinute <= 0 {
		return nil, fmt.Errorf("requests_per_minute must be positive")
	}
	if cfg.RateLimit.Burst <= 0 {
		return nil, fmt.Errorf("burst must be positive")
	}
	return cfg, nil
}
