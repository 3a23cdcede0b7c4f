package viz

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/vrpkit/cvrp"
)

// Embeddings scatters per-node vectors on a plane, one color per
// route, depot on top as a black cross, and writes the plot to path.
// Row i of emb is the vector of node i. Vectors wider than two columns
// are reduced to their first two principal components; two-column
// vectors are plotted as-is.
//
// Contract: emb must be rectangular with width >= 2, routes must pass
// cvrp.ValidateRoutes and every routed node needs an embedding row.
// Principal components make the reduction deterministic, so the same
// input always renders the same picture.
//
// Complexity: O(n * w^2) for the reduction, O(nodes) for the plot.
func Embeddings(routes []cvrp.Route, emb [][]float64, path string) error {
	if len(emb) == 0 {
		return ErrNoPoints
	}
	width := len(emb[0])
	for i, row := range emb {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d, row 0 has %d", ErrRaggedMatrix, i, len(row), width)
		}
	}
	if width < 2 {
		return fmt.Errorf("%w: got %d", ErrBadWidth, width)
	}

	if len(routes) == 0 {
		return cvrp.ErrNoRoutes
	}
	if err := cvrp.ValidateRoutes(routes); err != nil {
		return err
	}
	for _, r := range routes {
		for _, node := range r {
			if node < 0 || node >= len(emb) {
				return fmt.Errorf("%w: node %d", ErrMissingVector, node)
			}
		}
	}

	plane, err := project2D(emb)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Node embeddings"
	p.X.Label.Text = "component 1"
	p.Y.Label.Text = "component 2"

	colors := routeColors(len(routes))
	for i, r := range routes {
		xys := make(plotter.XYs, 0, len(r))
		for _, node := range r {
			if node == cvrp.Depot {
				continue
			}
			xys = append(xys, plotter.XY{X: plane[node][0], Y: plane[node][1]})
		}

		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("viz: route %d: %w", i+1, err)
		}
		sc.Shape = draw.CircleGlyph{}
		sc.Color = colors[i]
		sc.Radius = nodeRadius

		p.Add(sc)
		p.Legend.Add(fmt.Sprintf("Route %d", i+1), sc)
	}

	depot := cvrp.Point{X: plane[cvrp.Depot][0], Y: plane[cvrp.Depot][1]}
	if err := addDepotMarker(p, depot); err != nil {
		return err
	}
	p.Legend.Top = true
	p.Legend.Left = true

	return savePNG(p, path)
}

// project2D reduces rectangular vectors to two columns. Exact
// two-column input is copied through; anything wider is projected onto
// its first two principal components.
func project2D(emb [][]float64) ([][2]float64, error) {
	n, width := len(emb), len(emb[0])

	plane := make([][2]float64, n)
	if width == 2 {
		for i, row := range emb {
			plane[i] = [2]float64{row[0], row[1]}
		}

		return plane, nil
	}

	// The component matrix has min(n, width) columns, so two usable
	// components need at least two rows.
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 rows, got %d", ErrProjection, n)
	}

	data := mat.NewDense(n, width, nil)
	for i, row := range emb {
		data.SetRow(i, row)
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(data, nil); !ok {
		return nil, ErrProjection
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	var proj mat.Dense
	proj.Mul(data, vecs.Slice(0, width, 0, 2))
	for i := 0; i < n; i++ {
		plane[i] = [2]float64{proj.At(i, 0), proj.At(i, 1)}
	}

	return plane, nil
}
