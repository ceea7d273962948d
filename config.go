package dfagen

import (
	"github.com/sirupsen/logrus"

	"github.com/coregx/dfagen/deriv"
	"github.com/coregx/dfagen/prefilter"
)

// Config controls compilation.
//
// Example:
//
//	config := dfagen.DefaultConfig().WithMaxNodes(200_000)
//	re, err := dfagen.CompileWithConfig("(.*foo.*)&!(.*bar.*)", config)
type Config struct {
	// Store bounds the regex value store used while compiling.
	// Default: deriv.DefaultConfig()
	Store deriv.Config

	// EnablePrefilter enables literal-based candidate search in Find.
	// Default: true
	EnablePrefilter bool

	// Prefilter bounds literal extraction.
	// Default: prefilter.DefaultConfig()
	Prefilter prefilter.Config

	// Logger receives compilation diagnostics. Nil discards them.
	Logger logrus.FieldLogger
}

// DefaultConfig returns the default compilation settings.
func DefaultConfig() Config {
	return Config{
		Store:           deriv.DefaultConfig(),
		EnablePrefilter: true,
		Prefilter:       prefilter.DefaultConfig(),
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if c.EnablePrefilter {
		return c.Prefilter.Validate()
	}
	return nil
}

// WithMaxNodes returns a copy of the config with the store's node limit set.
func (c Config) WithMaxNodes(n int) Config {
	c.Store = c.Store.WithMaxNodes(n)
	return c
}

// WithPrefilter returns a copy of the config with prefiltering toggled.
func (c Config) WithPrefilter(enabled bool) Config {
	c.EnablePrefilter = enabled
	return c
}

// WithLogger returns a copy of the config logging to l.
func (c Config) WithLogger(l logrus.FieldLogger) Config {
	c.Logger = l
	return c
}
