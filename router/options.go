package router

// Options configures Route's ordering-strategy enumeration and attempt
// budget.
//
// Shuffled    – when true, ordering strategies are generated in a seeded
//               random permutation instead of the fixed enumeration order.
// Seed        – the PRNG seed used when Shuffled is true. Ignored otherwise.
// MaxAttempts – overrides model.RouterInput.MaxAttempts when > 0.
// OnAttempt   – optional progress hook invoked after every rip-up attempt,
//               so a caller (e.g. cmd/inkroute's spinner) can render
//               attempt-by-attempt status without Route itself logging
//               anything.
type Options struct {
	Shuffled    bool
	Seed        int64
	MaxAttempts int
	OnAttempt   func(attemptIndex int, summary AttemptProgress)
}

// AttemptProgress is what OnAttempt receives after each rip-up attempt.
type AttemptProgress struct {
	Strategy string
	Failures int
	Relaxed  bool
}

// Option is a functional option for Route.
type Option func(*Options)

// DefaultOptions returns deterministic ordering with no attempt-budget
// override.
func DefaultOptions() Options {
	return Options{}
}

// WithDeterministicOrdering restores the fixed, deterministic
// ordering-strategy enumeration. This is the default; it exists so callers
// can explicitly override a previous WithShuffledOrdering.
func WithDeterministicOrdering() Option {
	return func(o *Options) {
		o.Shuffled = false
	}
}

// WithShuffledOrdering enables a seeded random permutation of the
// ordering-strategy list. Randomisation is always seeded and therefore
// reproducible.
func WithShuffledOrdering(seed int64) Option {
	return func(o *Options) {
		o.Shuffled = true
		o.Seed = seed
	}
}

// WithMaxAttempts overrides the rip-up attempt budget for one Route call.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		o.MaxAttempts = n
	}
}

// WithOnAttempt registers a progress callback invoked after each rip-up
// attempt (normal and, if needed, relaxed budget runs alike).
func WithOnAttempt(fn func(attemptIndex int, summary AttemptProgress)) Option {
	return func(o *Options) {
		o.OnAttempt = fn
	}
}
