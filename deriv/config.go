package deriv

// Config bounds the resources of a Store.
type Config struct {
	// MaxNodes is the maximum number of nodes the Store may allocate,
	// including the Empty, All and None singletons.
	//
	// Default: 50,000 nodes
	//
	// The reachable node set of a pattern is finite but not known ahead of
	// time. Patterns with heavy use of '&' and '!' need the most room.
	MaxNodes int

	// MaxMarks is the maximum number of distinct mark names.
	//
	// Default: 50,000
	MaxMarks int
}

// DefaultConfig returns the default store limits.
func DefaultConfig() Config {
	return Config{
		MaxNodes: 50_000,
		MaxMarks: 50_000,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxNodes <= int(NoneNode) {
		return &Error{
			Kind: CapacityExceeded,
			Msg:  "MaxNodes must leave room beyond the singleton nodes",
			Site: "Config",
		}
	}
	if c.MaxMarks < 0 {
		return &Error{
			Kind: CapacityExceeded,
			Msg:  "MaxMarks must be >= 0",
			Site: "Config",
		}
	}
	return nil
}

// WithMaxNodes returns a new config with the specified node limit
func (c Config) WithMaxNodes(n int) Config {
	c.MaxNodes = n
	return c
}

// WithMaxMarks returns a new config with the specified mark limit
func (c Config) WithMaxMarks(n int) Config {
	c.MaxMarks = n
	return c
}
