// Package builder generates synthetic CVRP fixtures: random instances
// on the unit square and random flat solutions over them.
//
// What:
//   - RandomInstance(n, opts...) builds an instance with n customers
//     plus the depot at node 0: uniform coordinates, integer demands in
//     a configurable range, depot demand zero.
//   - RandomSolution(n, opts...) builds a flat solution visiting
//     customers 1..n in index order, split into routes by extra depot
//     visits at interior positions.
//
// Determinism:
//   - All randomness flows through a single seeded source. The same
//     seed and options reproduce the same fixture on any platform.
//   - seed==0 selects a fixed package default, so the zero Option set
//     is reproducible too, never time-based.
//
// Errors:
//   - Generators return ErrBadCustomerCount for n < 1 and never panic.
//   - Option constructors validate and panic on meaningless inputs,
//     surfacing programmer error at the call site.
package builder
