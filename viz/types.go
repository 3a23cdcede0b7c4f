package viz

import (
	"errors"

	"gonum.org/v1/plot/vg"
)

// Canvas geometry shared by all plot renderers.
const (
	// canvasSide is the square plot edge; 8 inch at canvasDPI gives
	// 800 px.
	canvasSide = 8 * vg.Inch
	canvasDPI  = 100
)

var (
	// ErrNoPoints indicates an empty embedding matrix.
	ErrNoPoints = errors.New("viz: no embedding points")

	// ErrRaggedMatrix indicates embedding rows of differing widths.
	ErrRaggedMatrix = errors.New("viz: embedding rows differ in width")

	// ErrBadWidth indicates embedding vectors too narrow to place on a
	// plane.
	ErrBadWidth = errors.New("viz: embedding width must be at least 2")

	// ErrMissingVector indicates a routed node with no embedding row.
	ErrMissingVector = errors.New("viz: node has no embedding vector")

	// ErrProjection indicates that the principal component
	// factorization did not converge.
	ErrProjection = errors.New("viz: principal component projection failed")

	// ErrNoImages indicates an empty image list passed to Grid.
	ErrNoImages = errors.New("viz: no images to composite")

	// ErrBadGrid indicates non-positive grid dimensions.
	ErrBadGrid = errors.New("viz: grid dimensions must be positive")

	// ErrGridTooSmall indicates a grid with fewer cells than images.
	ErrGridTooSmall = errors.New("viz: grid smaller than image list")
)
