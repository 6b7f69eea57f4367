package walker

import "github.com/bethropolis/dir2md/internal/utils"

// Options configures the behavior of Walk.
type Options struct {
	Logger utils.Logger
	// MaxFileSize skips files larger than this many bytes; zero means no limit.
	MaxFileSize int64
}

func defaultOptions() Options {
	return Options{
		Logger:      utils.NoopLogger{},
		MaxFileSize: 0,
	}
}

// Option is a functional option for configuring Walk.
type Option func(*Options)

// WithLogger sets a custom logger for the walker.
func WithLogger(logger utils.Logger) Option {
	return func(opts *Options) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithMaxFileSize sets the maximum file size to include, in bytes.
func WithMaxFileSize(maxBytes int64) Option {
	return func(opts *Options) {
		opts.MaxFileSize = maxBytes
	}
}
