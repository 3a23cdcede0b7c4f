package viz

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/vrpkit/cvrp"
)

// Glyph radii in printer points.
const (
	nodeRadius  = 2.5
	depotRadius = 6
)

// Routes renders routes over coords and writes the plot to path as a
// PNG. Each route becomes one line-and-marker series in its own color;
// the depot is drawn on top as a black cross with its own legend
// entry.
//
// Contract: routes must pass cvrp.ValidateRoutes and every visited
// node must have a coordinate; violations surface as the cvrp
// sentinels. Rendering is deterministic for fixed input.
//
// Complexity: O(nodes) plus encoding.
func Routes(routes []cvrp.Route, coords []cvrp.Point, path string) error {
	if len(routes) == 0 {
		return cvrp.ErrNoRoutes
	}
	if err := cvrp.ValidateRoutes(routes); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Vehicle routes"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	colors := routeColors(len(routes))
	for i, r := range routes {
		xys := make(plotter.XYs, len(r))
		for j, node := range r {
			if node < 0 || node >= len(coords) {
				return fmt.Errorf("%w: node %d", cvrp.ErrMissingCoord, node)
			}
			xys[j] = plotter.XY{X: coords[node].X, Y: coords[node].Y}
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("viz: route %d: %w", i+1, err)
		}
		line.Color = colors[i]
		points.Color = colors[i]
		points.Shape = draw.CircleGlyph{}
		points.Radius = nodeRadius

		p.Add(line, points)
		p.Legend.Add(fmt.Sprintf("Route %d", i+1), line, points)
	}

	// Every validated route starts at the depot, so coords[Depot] was
	// bounds-checked above.
	if err := addDepotMarker(p, coords[cvrp.Depot]); err != nil {
		return err
	}
	p.Legend.Top = true
	p.Legend.Left = true

	return savePNG(p, path)
}

// addDepotMarker overlays the depot cross and its legend entry.
func addDepotMarker(p *plot.Plot, at cvrp.Point) error {
	sc, err := plotter.NewScatter(plotter.XYs{{X: at.X, Y: at.Y}})
	if err != nil {
		return fmt.Errorf("viz: depot marker: %w", err)
	}
	sc.Shape = draw.CrossGlyph{}
	sc.Color = color.Black
	sc.Radius = depotRadius

	p.Add(sc)
	p.Legend.Add("Depot", sc)

	return nil
}

// routeColors returns one distinguishable color per series: a fixed
// blue for a lone series, a full rainbow sweep otherwise.
func routeColors(n int) []color.Color {
	if n < 2 {
		return []color.Color{color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}}
	}

	return palette.Rainbow(n, palette.Red, palette.Magenta, 1, 1, 1).Colors()
}

// savePNG draws p onto the fixed square canvas and writes it to path.
func savePNG(p *plot.Plot, path string) error {
	img := vgimg.NewWith(vgimg.UseWH(canvasSide, canvasSide), vgimg.UseDPI(canvasDPI))
	p.Draw(draw.New(img))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("viz: create %s: %w", path, err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("viz: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("viz: close %s: %w", path, err)
	}

	return nil
}
