package event

// Option configures a Bus.
type Option func(*config)

// config contains construction-time settings for a Bus.
type config struct {
	queueCapacity int
	errorHandler  ErrorHandler
	panicHandler  PanicHandler
}

func defaultConfig() config {
	return config{
		queueCapacity: defaultQueueCapacity,
	}
}

// WithQueueCapacity sets the initial capacity of the pending-event
// queue. The queue still grows past this on demand.
func WithQueueCapacity(capacity int) Option {
	return func(c *config) {
		if capacity > 0 {
			c.queueCapacity = capacity
		}
	}
}

// WithErrorHandler sets the callback invoked when a handler returns an
// error. Without one, handler errors are counted and discarded.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		c.errorHandler = h
	}
}

// WithPanicHandler sets the callback invoked when a handler panics.
// Without one, panics are recovered, counted, and discarded.
func WithPanicHandler(h PanicHandler) Option {
	return func(c *config) {
		c.panicHandler = h
	}
}
