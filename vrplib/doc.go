// Package vrplib reads and writes the VRPLIB text dialects used by the
// vehicle-routing benchmark community: instance files (NAME, DIMENSION,
// CAPACITY headers plus coordinate/demand/depot sections) and solution
// files ("Route #k:" lines plus an optional "Cost" line).
//
// What:
//
//   - Read resolves a local path or an http(s) URL to raw text with a
//     single GET and no retries.
//   - ParseInstance walks the text once with an explicit section state
//     and fills a cvrp.Instance; absent sections simply leave fields at
//     their zero values (partial parse, not a strict schema).
//   - ParseSolution collects "Route #k:" lines in file order and the
//     last "Cost" line; every other line is ignored.
//   - WriteInstance / WriteSolution emit the same dialects back, so
//     writing then parsing is the identity on parsed data.
//
// Indexing:
//
//   - Coordinates and demands are collected positionally, in line
//     order; the id column is read for well-formedness and discarded.
//     Depot ids are converted from the file's one-based convention to
//     the zero-based node model of package cvrp.
//   - Solution routes list customers only; close them with
//     cvrp.CloseRoutes before measuring or plotting.
//
// Errors:
//
//   - ParseError: a malformed numeric token inside a recognized section,
//     with the section, 1-based line and offending token.
//   - ErrDuplicateSection: a section marker seen twice.
//   - ErrBadStatus: a non-2xx response while fetching a URL.
//
// A missing section is never an error; the depot section's non-digit
// terminator (conventionally -1) is part of the format, not a failure.
package vrplib
