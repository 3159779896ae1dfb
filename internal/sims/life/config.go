package life

import "strconv"

// Config holds the construction parameters for a Life board.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the standard 128x128 board.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128}
}

// FromMap builds a Config from a string map, falling back to defaults for
// missing or malformed entries.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["width"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Width = n
		}
	}
	if v, ok := cfg["height"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Height = n
		}
	}
	return c
}
