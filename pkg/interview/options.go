package interview

import (
	"github.com/goliatone/go-poline/pkg/lookup"
	"go.uber.org/zap"
)

// Option customises the Controller.
type Option func(*Controller)

// WithPromptDriver swaps the terminal driver (useful for tests).
func WithPromptDriver(driver PromptDriver) Option {
	return func(c *Controller) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithLookup enables the metadata pre-fill step. A nil lookup leaves it off.
func WithLookup(l lookup.Lookup) Option {
	return func(c *Controller) {
		c.lookup = l
	}
}

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSanitizer replaces the free-text cleaner applied to note answers.
func WithSanitizer(fn func(string) string) Option {
	return func(c *Controller) {
		if fn != nil {
			c.sanitize = fn
		}
	}
}
