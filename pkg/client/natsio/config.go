package natsio

import "time"

// Config contains the connection settings of the NATS client
type Config struct {
	url          string
	name         string
	drainTimeout time.Duration
}

// NewConfig returns a Config for the server at url with default settings
func NewConfig(url string) *Config {
	return &Config{
		url:          url,
		name:         "festival",
		drainTimeout: 10 * time.Second,
	}
}

// WithName sets the connection name shown by the NATS server
func (c *Config) WithName(name string) *Config {
	c.name = name
	return c
}
