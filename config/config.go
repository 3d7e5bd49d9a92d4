// Package config loads the editor settings from an embedded default and the
// user's config file, and reloads them when the file changes.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

//go:embed config.json
var defaultConfig []byte

const confName = "config.json"

type EditorConfig struct {
	StatusTimeout time.Duration     `mapstructure:"status_timeout"`
	Placeholder   string            `mapstructure:"placeholder"`
	ShowWelcome   bool              `mapstructure:"show_welcome"`
	Keys          map[string]string `mapstructure:"keys"`
}

type Config struct {
	log     *log.Logger
	path    string
	watcher *fsnotify.Watcher

	mu     sync.RWMutex
	editor EditorConfig
}

func NewConfig(log *log.Logger) *Config {
	return &Config{log: log}
}

// DefaultPath is $XDG_CONFIG_HOME/texte/config.json, or ~/.texte/config.json
// when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "texte", confName)
	}
	return filepath.Join(os.Getenv("HOME"), ".texte", confName)
}

// Init reads the config at path, or at DefaultPath when path is empty. The
// default location is created from the embedded defaults when missing.
func (cfg *Config) Init(path string) error {
	if path == "" {
		path = DefaultPath()
		if err := cfg.writeConfigIfMissing(path); err != nil {
			return err
		}
	}
	cfg.path = path

	return cfg.readConfigIntoMemory()
}

// Path is the user config file in use.
func (cfg *Config) Path() string {
	return cfg.path
}

// Editor returns a copy of the current settings.
func (cfg *Config) Editor() EditorConfig {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()

	ed := cfg.editor
	ed.Keys = maps.Clone(cfg.editor.Keys)
	return ed
}

func (cfg *Config) writeConfigIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, defaultConfig, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	cfg.log.Printf("Wrote default config to %v", path)
	return nil
}

func (cfg *Config) readConfigIntoMemory() error {
	v := viper.New()
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(defaultConfig)); err != nil {
		return fmt.Errorf("read embedded config: %w", err)
	}

	// let the file extension pick the format of the user file
	v.SetConfigType("")
	v.SetConfigFile(cfg.path)
	err := v.MergeInConfig()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg.log.Printf("Config file %v not found, using defaults", cfg.path)
	case err != nil:
		return fmt.Errorf("read config file %s: %w", cfg.path, err)
	}

	var ed EditorConfig
	if err := v.Unmarshal(&ed); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	cfg.mu.Lock()
	cfg.editor = ed
	cfg.mu.Unlock()
	return nil
}

// Watch rereads the config whenever the file is written and then calls
// onChange with the new settings. onChange runs on the watcher goroutine.
func (cfg *Config) Watch(onChange func(EditorConfig)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	// editors often replace the file, so watch the directory
	if err := watcher.Add(filepath.Dir(cfg.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch config directory: %w", err)
	}
	cfg.watcher = watcher

	go cfg.rereadConfigOnFileChange(watcher, onChange)
	return nil
}

func (cfg *Config) rereadConfigOnFileChange(watcher *fsnotify.Watcher, onChange func(EditorConfig)) {
	target := filepath.Clean(cfg.path)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := cfg.readConfigIntoMemory(); err != nil {
				cfg.log.Printf("Could not reload config: %v", err)
				continue
			}
			cfg.log.Printf("Reloaded config from %v", cfg.path)
			if onChange != nil {
				onChange(cfg.Editor())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			cfg.log.Printf("Config watcher: %v", err)
		}
	}
}

// Cleanup stops watching the config file.
func (cfg *Config) Cleanup() {
	if cfg.watcher != nil {
		cfg.watcher.Close()
		cfg.watcher = nil
	}
}
