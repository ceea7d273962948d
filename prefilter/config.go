package prefilter

import "fmt"

// Config bounds literal extraction.
type Config struct {
	// MaxLiteralLen is the longest prefix extracted from the automaton.
	// Default: 8
	MaxLiteralLen int

	// MaxLiterals is the largest number of distinct prefixes kept while
	// walking the automaton. When a walk step would exceed it, extraction
	// stops with the prefixes found so far.
	// Default: 64
	MaxLiterals int
}

// DefaultConfig returns the default extraction bounds.
func DefaultConfig() Config {
	return Config{
		MaxLiteralLen: 8,
		MaxLiterals:   64,
	}
}

// Validate checks that the bounds are usable.
func (c Config) Validate() error {
	if c.MaxLiteralLen < 1 {
		return &ConfigError{Field: "MaxLiteralLen", Message: fmt.Sprintf("must be >= 1, got %d", c.MaxLiteralLen)}
	}
	if c.MaxLiterals < 1 {
		return &ConfigError{Field: "MaxLiterals", Message: fmt.Sprintf("must be >= 1, got %d", c.MaxLiterals)}
	}
	return nil
}

// WithMaxLiteralLen returns a copy of the config with MaxLiteralLen set.
func (c Config) WithMaxLiteralLen(n int) Config {
	c.MaxLiteralLen = n
	return c
}

// WithMaxLiterals returns a copy of the config with MaxLiterals set.
func (c Config) WithMaxLiterals(n int) Config {
	c.MaxLiterals = n
	return c
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "prefilter: invalid " + e.Field + ": " + e.Message
}
