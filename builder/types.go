package builder

import "errors"

// Deterministic generator defaults. Values live here rather than as
// magic numbers in the generators.
const (
	// DefaultCapacity is the vehicle capacity stamped on generated
	// instances when WithCapacity is not supplied.
	DefaultCapacity = 30

	// defaultDemandLo and defaultDemandHi bound customer demands
	// inclusively. The depot always demands zero.
	defaultDemandLo = 1
	defaultDemandHi = 9

	// defaultSeed replaces seed==0 so that unseeded runs are still
	// reproducible.
	defaultSeed int64 = 1

	// maxDepotInserts caps how many interior depot visits a random
	// solution attempts, giving between 2 and maxDepotInserts+1 routes
	// when the customer count allows.
	maxDepotInserts = 5
)

var (
	// ErrBadCustomerCount indicates a generator call with n < 1.
	ErrBadCustomerCount = errors.New("builder: customer count must be at least 1")
)
