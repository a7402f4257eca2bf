package conv

import (
	"time"

	"github.com/ericlagergren/decimal"
)

// DefaultScaleTTL is how long a derived decimal scale stays cached
const DefaultScaleTTL = 60 * time.Second

var (
	DefaultDatePatterns = []string{"yyyy-MM-dd"}
	DefaultTimePatterns = []string{
		"HH:mm:ss.SSSXXX",
		"HH:mm:ss.SSS",
		"HH:mm:ss",
	}
	DefaultTimestampPatterns = []string{
		"yyyy-MM-dd'T'HH:mm:ss.SSSXXX",
		"yyyy-MM-dd'T'HH:mm:ssXXX",
		"yyyy-MM-dd'T'HH:mm:ss.SSS",
		"yyyy-MM-dd'T'HH:mm:ss",
		"yyyy-MM-dd HH:mm:ss.SSS",
		"yyyy-MM-dd HH:mm:ss",
	}
)

// Options contains configuration for the registry default handlers
type Options struct {
	// Location is used for temporal values without zone information
	Location *time.Location
	// DatePatterns, TimePatterns and TimestampPatterns are tried in order, first match wins
	DatePatterns      []string
	TimePatterns      []string
	TimestampPatterns []string
	// ScaleTTL controls derived decimal scale cache expiry
	ScaleTTL time.Duration
	// DecimalRounding, when set, allows decimal rescaling that drops digits
	DecimalRounding *decimal.RoundingMode

	now func() time.Time
}

// DefaultOptions returns default registry options
func DefaultOptions() Options {
	return Options{
		Location:          time.UTC,
		DatePatterns:      DefaultDatePatterns,
		TimePatterns:      DefaultTimePatterns,
		TimestampPatterns: DefaultTimestampPatterns,
		ScaleTTL:          DefaultScaleTTL,
	}
}

// Option represents registry option
type Option interface {
	apply(*Options)
}

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

// WithOptions replaces all options
func WithOptions(options Options) Option {
	return optionFn(func(o *Options) { *o = options })
}

func WithLocation(loc *time.Location) Option {
	return optionFn(func(o *Options) { o.Location = loc })
}

func WithDatePatterns(patterns ...string) Option {
	return optionFn(func(o *Options) { o.DatePatterns = patterns })
}

func WithTimePatterns(patterns ...string) Option {
	return optionFn(func(o *Options) { o.TimePatterns = patterns })
}

func WithTimestampPatterns(patterns ...string) Option {
	return optionFn(func(o *Options) { o.TimestampPatterns = patterns })
}

func WithScaleTTL(ttl time.Duration) Option {
	return optionFn(func(o *Options) { o.ScaleTTL = ttl })
}

func WithDecimalRounding(mode decimal.RoundingMode) Option {
	return optionFn(func(o *Options) { o.DecimalRounding = &mode })
}

func withClock(now func() time.Time) Option {
	return optionFn(func(o *Options) { o.now = now })
}

func resolveOptions(opts []Option) Options {
	ret := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&ret)
		}
	}
	if ret.Location == nil {
		ret.Location = time.UTC
	}
	if ret.ScaleTTL <= 0 {
		ret.ScaleTTL = DefaultScaleTTL
	}
	if ret.now == nil {
		ret.now = time.Now
	}
	return ret
}
