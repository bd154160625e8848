package wizard

import (
	"io"
	"time"

	"github.com/goliatone/go-poline/pkg/interview"
	"github.com/goliatone/go-poline/pkg/merge"
	"github.com/goliatone/go-poline/pkg/persist"
	"github.com/goliatone/go-poline/pkg/templates"
	"go.uber.org/zap"
)

// Option customises a Session.
type Option func(*Session)

// WithInterview sets the controller used for every prompt.
func WithInterview(c *interview.Controller) Option {
	return func(s *Session) {
		if c != nil {
			s.interview = c
		}
	}
}

// WithSearchOptions overrides where the template directory is looked up.
func WithSearchOptions(opts templates.SearchOptions) Option {
	return func(s *Session) {
		s.search = opts
	}
}

// WithLoader swaps the template loader.
func WithLoader(l *templates.Loader) Option {
	return func(s *Session) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithWriter swaps the record writer.
func WithWriter(w *persist.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.writer = w
		}
	}
}

// WithNamer swaps the file namer.
func WithNamer(n *persist.Namer) Option {
	return func(s *Session) {
		if n != nil {
			s.namer = n
		}
	}
}

// WithMergeOptions forwards options to every merge.
func WithMergeOptions(opts ...merge.Option) Option {
	return func(s *Session) {
		s.mergeOptions = append(s.mergeOptions, opts...)
	}
}

// WithOutput sets where the summary table is drawn.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for file names.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}
