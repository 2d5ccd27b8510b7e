package coopthreads

import "github.com/joeycumines/logiface"

// Default configuration values, matching the original library's
// CONFIG_MAX_THREADS / CONFIG_DEFAULT_STACK_SIZE defaults.
const (
	// DefaultMaxThreads is used when WithMaxThreads is not supplied.
	DefaultMaxThreads = 8
	// DefaultStackSize is used for a thread registered with stack_sz == 0.
	DefaultStackSize = 4096
)

// schedulerConfig is the resolved configuration for NewScheduler, built up
// by Option values. Compile-time knobs in the original (MAX_THREADS,
// DEFAULT_STACK_SIZE, OPT_IDLE, OPT_WAIT, OPT_YIELD_AFTER) become
// constructor-time options here, since Go has no preprocessor (DESIGN.md,
// Open Question resolution 3).
type schedulerConfig struct {
	maxThreads       int
	defaultStackSize int
	idleEnabled      bool
	waitEnabled      bool
	yieldAfter       bool
	tickFunc         TickFunc
	idleFunc         IdleFunc
	logger           *logiface.Logger[logiface.Event]
}

// Option configures a Scheduler constructed via NewScheduler.
type Option interface {
	apply(*schedulerConfig)
}

type optionFunc func(*schedulerConfig)

func (f optionFunc) apply(c *schedulerConfig) { f(c) }

// WithMaxThreads sets the fixed size of the thread control block pool.
// Panics (at NewScheduler time) if n <= 0.
func WithMaxThreads(n int) Option {
	return optionFunc(func(c *schedulerConfig) { c.maxThreads = n })
}

// WithDefaultStackSize sets the stack size used for a thread registered
// with stack_sz == 0. Purely informational (see TCB.StackSize).
func WithDefaultStackSize(n int) Option {
	return optionFunc(func(c *schedulerConfig) { c.defaultStackSize = n })
}

// WithIdle enables or disables the system-wide deep idle of the idle
// subsystem (C5). Enabled by default. When disabled, the host's deep-idle
// callback is never invoked; Idle itself still suspends threads until their
// deadline.
func WithIdle(enabled bool) Option {
	return optionFunc(func(c *schedulerConfig) { c.idleEnabled = enabled })
}

// WithWait records whether the wait/notify subsystem (C6) is enabled.
// Enabled by default. The setting is stored only: Wait, Notify and
// NotifyAll behave the same whether it is enabled or disabled.
func WithWait(enabled bool) Option {
	return optionFunc(func(c *schedulerConfig) { c.waitEnabled = enabled })
}

// WithYieldAfter enables or disables YieldAfter's switch_tick bookkeeping.
// Enabled by default.
func WithYieldAfter(enabled bool) Option {
	return optionFunc(func(c *schedulerConfig) { c.yieldAfter = enabled })
}

// WithTickFunc supplies the host's tick source, read by Idle, timed Wait,
// YieldAfter and the scheduler's deadline checks. When nil (the default),
// every tick reads as 0, so time never advances for those deadlines.
func WithTickFunc(fn TickFunc) Option {
	return optionFunc(func(c *schedulerConfig) { c.tickFunc = fn })
}

// WithIdleFunc supplies the host's deep-idle callback. Only invoked when
// the idle subsystem is enabled and every non-hole thread is idle.
func WithIdleFunc(fn IdleFunc) Option {
	return optionFunc(func(c *schedulerConfig) { c.idleFunc = fn })
}

// WithLogger attaches a debug logger, standing in for the original's
// dbg_log_cb. Following the pack's own sql/export.Exporter.Logger field
// convention, a nil logger (the default) silently discards every log call.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return optionFunc(func(c *schedulerConfig) { c.logger = logger })
}

// resolveOptions applies opts over the documented defaults.
func resolveOptions(opts []Option) *schedulerConfig {
	c := &schedulerConfig{
		maxThreads:       DefaultMaxThreads,
		defaultStackSize: DefaultStackSize,
		idleEnabled:      true,
		waitEnabled:      true,
		yieldAfter:       true,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o.apply(c)
	}
	return c
}
