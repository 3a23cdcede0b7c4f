package builder

// Option customizes a generator by mutating its configuration before
// any randomness is drawn. Constructors validate and panic on
// meaningless inputs; the generators themselves never panic.
type Option func(*config)

// config aggregates every generator knob. It is filled with defaults
// by newConfig and passed around by value.
type config struct {
	seed     int64
	capacity int
	demandLo int
	demandHi int
}

// newConfig builds the default configuration and applies opts in
// order, later options overriding earlier ones.
//
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{
		seed:     defaultSeed,
		capacity: DefaultCapacity,
		demandLo: defaultDemandLo,
		demandHi: defaultDemandHi,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed fixes the random stream. Seed zero selects the package
// default, so WithSeed(0) and no seed at all are the same stream.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithCapacity overrides the vehicle capacity stamped on generated
// instances. Panics if capacity < 1.
func WithCapacity(capacity int) Option {
	if capacity < 1 {
		panic("builder: WithCapacity(capacity<1)")
	}

	return func(c *config) {
		c.capacity = capacity
	}
}

// WithDemandRange overrides the inclusive customer demand range.
// Panics if lo < 1 or hi < lo.
func WithDemandRange(lo, hi int) Option {
	if lo < 1 || hi < lo {
		panic("builder: WithDemandRange(lo<1 or hi<lo)")
	}

	return func(c *config) {
		c.demandLo, c.demandHi = lo, hi
	}
}
