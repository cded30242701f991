package service

import (
	"context"
	"time"
)

const (
	// DefaultStoreTimeout bounds a single store call.
	DefaultStoreTimeout = 5 * time.Second
	// DefaultFeedLimit is the page size of the public feed when none is given.
	DefaultFeedLimit = 20
	// DefaultFeedMaxLimit caps the page size of the public feed.
	DefaultFeedMaxLimit = 100
)

type options struct {
	now          func() time.Time
	storeTimeout time.Duration
	feedMaxLimit uint64
}

// Option configures a service.
type Option func(*options)

// WithClock replaces time.Now for timestamps written by the service.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithStoreTimeout sets the deadline applied to each store call.
func WithStoreTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.storeTimeout = d
		}
	}
}

// WithFeedMaxLimit caps the page size of the public feed.
func WithFeedMaxLimit(n uint64) Option {
	return func(o *options) {
		if n > 0 {
			o.feedMaxLimit = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		now:          time.Now,
		storeTimeout: DefaultStoreTimeout,
		feedMaxLimit: DefaultFeedMaxLimit,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, o.storeTimeout)
}

// timestamp returns the current time truncated to the store's microsecond precision.
func (o options) timestamp() time.Time {
	return o.now().UTC().Truncate(time.Microsecond)
}
