package logger

import "io"

// Option configures a logger created with New.
type Option func(*config)

type config struct {
	debug   bool
	json    bool
	writers []io.Writer
}

// WithDebug sets the log level to Debug when true, Info otherwise.
func WithDebug(debug bool) Option {
	return func(c *config) {
		c.debug = debug
	}
}

// WithJSON switches from the colorized console encoder to zap's JSON
// encoder for structured service logs.
func WithJSON(json bool) Option {
	return func(c *config) {
		c.json = json
	}
}

// WithWriters sets the output writers. Defaults to os.Stdout.
func WithWriters(w ...io.Writer) Option {
	return func(c *config) {
		c.writers = w
	}
}
