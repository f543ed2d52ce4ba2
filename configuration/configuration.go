// Package configuration loads the player host settings from YAML.
package configuration

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	tplog "okinoko-test_player/log"
)

type Configuration struct {
	Store StoreConfig `yaml:"store"`
	Log   LogConfig   `yaml:"log"`
	Grid  GridConfig  `yaml:"grid"`
}

type StoreConfig struct {
	DataDir   string `yaml:"data_dir"`
	CacheSize int    `yaml:"cache_size"` // raw state blobs kept in memory
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// GridConfig holds the dimensions used by "create" when no flags are given.
type GridConfig struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

func DefaultConfiguration() *Configuration {
	return &Configuration{
		Store: StoreConfig{
			DataDir:   "./playerdata",
			CacheSize: 128,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Grid: GridConfig{
			Width:  16,
			Height: 16,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Configuration, error) {
	config := DefaultConfiguration()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate reports every invalid field at once.
func (c *Configuration) Validate() error {
	var result *multierror.Error
	if c.Store.DataDir == "" {
		result = multierror.Append(result, fmt.Errorf("store.data_dir is empty"))
	}
	if c.Store.CacheSize <= 0 {
		result = multierror.Append(result, fmt.Errorf("store.cache_size must be positive, got %d", c.Store.CacheSize))
	}
	if _, err := tplog.ParseLogFormat(c.Log.Format); err != nil {
		result = multierror.Append(result, fmt.Errorf("log.format: %w", err))
	}
	// zero dimensions are allowed: such players fail on their first turn
	return result.ErrorOrNil()
}
