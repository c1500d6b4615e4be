package libevents

import (
	"github.com/google/uuid"
)

// Option configures an EventBus.
type Option func(*busConfig)

// IDGenerator mints listener identifiers.
type IDGenerator func() string

type busConfig struct {
	// name tags every log line of the bus.
	name string

	logger logger

	idGenerator IDGenerator
}

func defaultBusConfig() busConfig {
	return busConfig{
		name:        "default",
		logger:      noopLogger{},
		idGenerator: uuid.NewString,
	}
}

// WithName sets the name the bus logs under.
func WithName(name string) Option {
	return func(c *busConfig) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger sets the logger. Passing nil keeps logging disabled.
func WithLogger(l logger) Option {
	return func(c *busConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithIDGenerator replaces the uuid based listener id generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(c *busConfig) {
		if g != nil {
			c.idGenerator = g
		}
	}
}
