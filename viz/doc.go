// Package viz renders CVRP artifacts to PNG files: route maps,
// 2D projections of per-node embeddings and grid composites of
// previously rendered images.
//
// What:
//   - Routes draws each route as a colored line-and-marker series over
//     the node coordinates, with the depot as a distinct cross glyph.
//   - Embeddings scatters per-node vectors in two dimensions, reducing
//     wider vectors with principal components first. The reduction is
//     deterministic: the same input always yields the same picture.
//   - Grid pastes rendered images into a rows-by-cols sheet.
//
// Canvas:
//   - Plots are written as 800x800 px PNG (8 inch at 100 DPI).
//
// Errors:
//   - Route shape problems surface as the cvrp sentinels
//     (ErrNoRoutes, ErrRouteNotClosed, ErrMissingCoord, ...).
//   - Embedding and grid shape problems use this package's sentinels
//     from types.go. Filesystem and encoding failures are wrapped with
//     the offending path.
package viz
