package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/bits"
	"os"

	"github.com/tailscale/hujson"

	"statmerge/internal/pipeline"
	"statmerge/internal/stat"
)

var (
	errConfigFileRead = errors.New("cannot read config file")
	errConfigInvalid  = errors.New("invalid config file")
)

// Config carries the tunables shared by every command. Flags override the
// config file, which overrides the defaults.
type Config struct {
	// Lines caps table previews.
	Lines int `json:"lines"`

	// Buckets sizes the merge table. Must be a positive power of two.
	Buckets int `json:"buckets"`
}

// DefaultConfig returns the built-in tunables.
func DefaultConfig() Config {
	return Config{
		Lines:   pipeline.DefaultPreviewLines,
		Buckets: stat.DefaultBuckets,
	}
}

// LoadConfig reads a JSONC config file and overlays it on the defaults.
// An empty path, or a missing file when mustExist is false, yields the
// defaults.
func LoadConfig(path string, mustExist bool) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("%w: %s", errConfigFileRead, path)
	}

	parsed, err := parseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}

	if parsed.Lines != 0 {
		cfg.Lines = parsed.Lines
	}

	if parsed.Buckets != 0 {
		cfg.Buckets = parsed.Buckets
	}

	err = cfg.validate()
	if err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}

	return cfg, nil
}

func parseConfig(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Lines < 0 {
		return fmt.Errorf("lines must be non-negative, got %d", c.Lines)
	}

	if c.Buckets <= 0 || bits.OnesCount(uint(c.Buckets)) != 1 {
		return fmt.Errorf("buckets must be a positive power of two, got %d", c.Buckets)
	}

	return nil
}
