package utfrange

import "github.com/dshills/utfrange/codec"

// config holds construction settings for String.
type config struct {
	lossy       bool
	replaceOpts []codec.ReplaceOption
}

// Option configures how a String is built from raw bytes.
type Option func(*config)

// WithReplaceInvalid builds the String from a copy of the input in which
// every malformed sequence is replaced by U+FFFD, instead of rejecting the
// input.
func WithReplaceInvalid() Option {
	return func(c *config) {
		c.lossy = true
	}
}

// WithReplacement sets the code point substituted for malformed sequences.
// It implies WithReplaceInvalid.
func WithReplacement(r rune) Option {
	return func(c *config) {
		c.lossy = true
		c.replaceOpts = append(c.replaceOpts, codec.WithReplacement(r))
	}
}

// WithTruncation sets how a sequence cut off by the end of the input is
// handled during replacement. It implies WithReplaceInvalid.
func WithTruncation(p codec.TruncationPolicy) Option {
	return func(c *config) {
		c.lossy = true
		c.replaceOpts = append(c.replaceOpts, codec.WithTruncation(p))
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
