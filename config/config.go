// Package config loads the store and front-end parameters from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/kdiag/core"
	"github.com/philipp01105/kdiag/logger"
	"github.com/philipp01105/kdiag/logstore"
)

// Output formats understood by the CLI
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputTable = "table"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config holds everything needed to build a store and a logger
type Config struct {
	// Level is the default severity for unprefixed messages
	Level string `yaml:"level"`
	// Capacity is the number of live entries
	Capacity int `yaml:"capacity"`
	// MessageLen is the maximum stored message length
	MessageLen int `yaml:"message_len"`
	// BufferSize is the printk scratch buffer, terminator included
	BufferSize int `yaml:"buffer_size"`
	// Output selects how entries are displayed
	Output string `yaml:"output"`
	// ShowPriority prefixes text output with "<p>"
	ShowPriority bool `yaml:"show_priority"`
	// Mirror also sends every stored entry to the zap logger
	Mirror bool `yaml:"mirror"`
	// Development switches zap to its development config
	Development bool `yaml:"development"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Level:      logstore.DefaultLevel.String(),
		Capacity:   logstore.DefaultCapacity,
		MessageLen: logstore.DefaultMessageLen,
		BufferSize: logger.DefaultBufferSize,
		Output:     OutputText,
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem at once
func (c Config) Validate() error {
	var err error
	if l, perr := core.ParseLevel(c.Level); perr != nil || l == core.LevelDefault {
		err = multierr.Append(err, fmt.Errorf("%w: level %q", ErrInvalid, c.Level))
	}
	if c.Capacity < 1 || c.Capacity > 254 {
		err = multierr.Append(err, fmt.Errorf("%w: capacity %d not in 1..254", ErrInvalid, c.Capacity))
	}
	if c.MessageLen < 3 {
		err = multierr.Append(err, fmt.Errorf("%w: message_len %d below 3", ErrInvalid, c.MessageLen))
	}
	if c.BufferSize < 2 {
		err = multierr.Append(err, fmt.Errorf("%w: buffer_size %d below 2", ErrInvalid, c.BufferSize))
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputTable:
	default:
		err = multierr.Append(err, fmt.Errorf("%w: output %q", ErrInvalid, c.Output))
	}
	return err
}

// DefaultLevel returns the parsed default severity, WARNING if unparsable
func (c Config) DefaultLevel() core.Level {
	l, err := core.ParseLevel(c.Level)
	if err != nil || !l.Valid() {
		return logstore.DefaultLevel
	}
	return l
}

// NewStore builds a store from the configuration
func (c Config) NewStore() *logstore.Store {
	return logstore.New(
		logstore.WithCapacity(c.Capacity),
		logstore.WithMessageLen(c.MessageLen),
		logstore.WithDefaultLevel(c.DefaultLevel()),
	)
}
