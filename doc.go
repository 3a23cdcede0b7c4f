// Package vrpkit is your toolbox for the capacitated vehicle routing
// problem — VRPLIB files, route arithmetic, synthetic fixtures and
// ready-made plots.
//
// 🚚 What is vrpkit?
//
//	A small, deterministic library that brings together:
//		• VRPLIB text: load from path or URL, parse instances & solutions, write both back
//		• Route codec: flatten depot-wrapped routes to flat tours and split them back
//		• CVRP metrics: Euclidean solution cost, per-route demand, feasibility checks
//		• Synthetic fixtures: seeded random instances & solutions for tests and demos
//		• Visualization: per-route maps, embedding scatters, grid composites
//
// ✨ Why choose vrpkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – seeded randomness, stable rounding, reproducible plots
//   - Honest errors – typed sentinels for every failure mode, no panics in library code
//   - Tolerant input – partial VRPLIB files parse to partial instances
//
// Under the hood, everything is organized under four subpackages:
//
//	cvrp/    — instance model, route/solution codec, cost, demand & feasibility
//	vrplib/  — VRPLIB readers, parsers and writers for instances & solutions
//	builder/ — seeded generators for random instances & solutions
//	viz/     — PNG rendering: route maps, embedding scatters, grid sheets
//
// Quick ASCII example:
//
//	    1───2        flat solution  [0 1 2 0 3 0]
//	   ╱     ╲       splits into    [0 1 2 0] and [0 3 0]
//	  0───────╯
//	  │╲
//	  ╰─3            node 0 is always the depot.
//
// Dive into the per-package docs for contracts, error sentinels and
// runnable examples.
//
//	go get github.com/katalvlaran/vrpkit
package vrpkit
