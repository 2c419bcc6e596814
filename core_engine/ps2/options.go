package ps2

import (
	"log"
	"runtime"
	"time"
)

// Logger receives the driver's diagnostic lines. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// Clock is the time source for polling deadlines. It must be monotonic.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the monotonic wall clock.
var SystemClock Clock = systemClock{}

// Default tuning values.
const (
	DefaultReadTimeout     = time.Second
	DefaultWriteTimeout    = time.Second
	DefaultFlushIterations = 100
	DefaultRetries         = 4
)

// Options configures a Controller. Zero fields take their defaults in
// NewController.
type Options struct {
	ReadTimeout     time.Duration // How long to wait for the output buffer to fill
	WriteTimeout    time.Duration // How long to wait for the input buffer to drain
	FlushIterations int           // Status polls per flush
	Retries         int           // Attempts per retried operation

	Clock  Clock  // Deadline source, SystemClock by default
	Pause  func() // Called between polls, runtime.Gosched by default
	Logger Logger // log.Default() by default

	// Strict turns keyboard acknowledgement and self-test mismatches into
	// ErrInitFailed instead of logging them and carrying on.
	Strict bool
	// Debug logs every byte exchanged with the controller.
	Debug bool
}

// DefaultOptions returns the options NewController would fill in.
func DefaultOptions() Options {
	return Options{
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		FlushIterations: DefaultFlushIterations,
		Retries:         DefaultRetries,
		Clock:           SystemClock,
		Pause:           runtime.Gosched,
		Logger:          log.Default(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.ReadTimeout <= 0 {
		o.ReadTimeout = def.ReadTimeout
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = def.WriteTimeout
	}
	if o.FlushIterations <= 0 {
		o.FlushIterations = def.FlushIterations
	}
	if o.Retries <= 0 {
		o.Retries = def.Retries
	}
	if o.Clock == nil {
		o.Clock = def.Clock
	}
	if o.Pause == nil {
		o.Pause = def.Pause
	}
	if o.Logger == nil {
		o.Logger = def.Logger
	}
	return o
}
