package viz

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Grid opens the listed images and pastes them row-major into a
// rows-by-cols sheet written to out. The cell size is taken from the
// first image; smaller images leave background visible and larger
// ones are clipped to their cell.
//
// Contract: at least one path, positive dimensions, and rows*cols cells
// must cover the list. The output format follows the extension of out.
//
// Complexity: O(total pixels).
func Grid(paths []string, rows, cols int, out string) error {
	if len(paths) == 0 {
		return ErrNoImages
	}
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: %dx%d", ErrBadGrid, rows, cols)
	}
	if rows*cols < len(paths) {
		return fmt.Errorf("%w: %dx%d cells for %d images", ErrGridTooSmall, rows, cols, len(paths))
	}

	first, err := imaging.Open(paths[0])
	if err != nil {
		return fmt.Errorf("viz: open %s: %w", paths[0], err)
	}
	cellW := first.Bounds().Dx()
	cellH := first.Bounds().Dy()

	sheet := imaging.New(cols*cellW, rows*cellH, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	for i, src := range paths {
		img := first
		if i > 0 {
			if img, err = imaging.Open(src); err != nil {
				return fmt.Errorf("viz: open %s: %w", src, err)
			}
		}
		at := image.Pt((i%cols)*cellW, (i/cols)*cellH)
		sheet = imaging.Paste(sheet, img, at)
	}

	if err := imaging.Save(sheet, out); err != nil {
		return fmt.Errorf("viz: save %s: %w", out, err)
	}

	return nil
}
