package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mcoot/jewelmatch/internal/model"
)

// Config holds CLI configuration
type Config struct {
	Width   int
	Height  int
	Seed    uint64
	Workers int
	Palette string
	Output  string
	Color   bool
	Verbose bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Width:   8,
		Height:  8,
		Seed:    getEnvUint("JEWELMATCH_SEED", 1),
		Workers: int(getEnvUint("JEWELMATCH_WORKERS", 1)),
		Palette: os.Getenv("JEWELMATCH_PALETTE"),
		Output:  getEnvOrDefault("JEWELMATCH_OUTPUT", "text"),
		Color:   true,
		Verbose: false,
	}
}

// Validate checks flag values that cobra cannot type-check
func (c *Config) Validate() error {
	if c.Output != "text" && c.Output != "json" {
		return fmt.Errorf("output must be text or json, got %q", c.Output)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return model.ValidateDimensions(c.Width, c.Height)
}

// ParsePalette converts letter codes such as "RGB" into a palette.
// An empty string selects the default palette.
func (c *Config) ParsePalette() (model.Palette, error) {
	if c.Palette == "" {
		return nil, nil
	}
	var palette model.Palette
	for _, code := range c.Palette {
		kind, ok := model.JewelKindFromCode(code)
		if !ok || kind == model.Empty {
			return nil, fmt.Errorf("%w: unknown jewel %q", model.ErrInvalidPalette, code)
		}
		palette = append(palette, kind)
	}
	return palette, palette.Validate()
}

// parseBoardFlag reads a comma-separated list of rows, top row first
func parseBoardFlag(value string) (*model.Board, error) {
	return model.ParseBoard(strings.Split(value, ","))
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvUint(key string, defaultVal uint64) uint64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return defaultVal
	}
	return parsed
}
