package editable

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/klauspost/compress/flate"
	"gopkg.in/yaml.v3"
)

// DefaultHistoryLimit bounds the undo/redo snapshot stack.
const DefaultHistoryLimit = 50

// Config controls a Session.
type Config struct {
	// HistoryLimit caps the number of undo snapshots kept. Zero or
	// negative means DefaultHistoryLimit.
	HistoryLimit int `json:"history_limit" yaml:"history_limit"`

	// CompressionLevel is the deflate level used when saving. Zero means
	// the library default.
	CompressionLevel int `json:"compression_level" yaml:"compression_level"`

	// Logger receives debug output. Nil means discard.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = DefaultHistoryLimit
	}
	if c.CompressionLevel == 0 {
		c.CompressionLevel = flate.DefaultCompression
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
}

// LoadConfig reads a Config from a YAML file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("editable: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("editable: parse config %s: %w", path, err)
	}
	return cfg, nil
}
